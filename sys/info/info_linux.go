package info

import (
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/kisun-bit/automount/util/basic"
	"github.com/kisun-bit/automount/util/logger"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sys/unix"
)

// LogHostSummary 启动时输出一行主机概况. 任何采集失败仅降级为部分信息,
// 不影响执行.
func LogHostSummary() {
	hostname, _ := os.Hostname()
	cores := 0
	if counts, err := cpu.Counts(true); err == nil {
		cores = counts
	}
	total := ""
	if vm, err := mem.VirtualMemory(); err == nil {
		total = basic.TrimAllSpace(humanize.IBytes(vm.Total))
	}
	logger.Infof("host %s (%s/%s, %d cpus, %s memory)",
		hostname, runtime.GOOS, runtime.GOARCH, cores, total)
}

// LogUsage 输出指定路径所在文件系统的容量与可用空间.
func LogUsage(path string) {
	statfs := &unix.Statfs_t{}
	if err := unix.Statfs(path, statfs); err != nil {
		logger.Debugf("statfs %s: %v", path, err)
		return
	}
	capacity := uint64(statfs.Blocks) * uint64(statfs.Bsize)
	available := uint64(statfs.Bavail) * uint64(statfs.Bsize)
	logger.Infof("%s: %s available of %s", path,
		basic.TrimAllSpace(humanize.IBytes(available)),
		basic.TrimAllSpace(humanize.IBytes(capacity)))
}
