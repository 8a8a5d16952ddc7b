package util

import (
	"os"
	"regexp"
)

var (
	expandRegex = regexp.MustCompile("%([a-zA-Z_0-9]+)%")
)

// ExpandEnv 同时支持%VAR%与${VAR}两种环境变量写法的展开.
func ExpandEnv(v string) string {
	v = expandRegex.ReplaceAllString(v, "$${$1}")
	return os.Expand(v, getenv)
}

func getenv(v string) string {
	if v == "$" {
		return "$"
	}
	return os.Getenv(v)
}
