package main

import (
	"os"

	"github.com/kisun-bit/automount/disk/automount"
	"github.com/kisun-bit/automount/sys/info"
	"github.com/kisun-bit/automount/util/logger"
)

// 单入口, 无命令行参数. 退出码0表示本轮执行完成,
// 个别分区挂载失败只体现在日志中.
func main() {
	if os.Geteuid() != 0 {
		logger.Fatalf("automount must run as root")
	}
	info.LogHostSummary()

	pass := automount.NewPass()
	report, err := pass.Run()
	if err != nil {
		logger.Fatalf("enumerate block devices: %v", err)
	}
	logger.Debugf("run report: %s", report)
	info.LogUsage(pass.MountRoot)
}
