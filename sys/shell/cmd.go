package shell

import (
	"fmt"
	"strings"
)

// lsblk列宽固定为本工具关心的拓扑属性. SIZE以字节计(-b), 单次查询同时覆盖
// 分类与过滤两类需要.
const lsblkColumns = "NAME,TYPE,PKNAME,FSTYPE,MOUNTPOINT,PARTLABEL,LABEL,PARTTYPE,SIZE"

func CommandStringForLsblk() string {
	return fmt.Sprintf("lsblk -b -p -o %s --json", lsblkColumns)
}

func CommandStringForMount(device, target string) string {
	return fmt.Sprintf("mount %s %s", quoteArg(device), quoteArg(target))
}

func CommandStringForXdgOpen(path string) string {
	return fmt.Sprintf("xdg-open %s", quoteArg(path))
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t'\"\\$`") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
