package automount

import "github.com/kisun-bit/automount/util"

const (
	// DefaultMountRoot 自动挂载根目录, 每个合格分区在其下各占一个子目录.
	DefaultMountRoot = "/mnt/auto"

	// SizeFloorBytes 参与自动挂载的分区最小字节数(10GiB).
	SizeFloorBytes uint64 = 10 * 1024 * 1024 * 1024
)

// MountRoot 解析生效的挂载根目录. AUTOMOUNT_ROOT环境变量非空时覆盖默认值.
func MountRoot() string {
	if root := util.ExpandEnv("%AUTOMOUNT_ROOT%"); root != "" {
		return root
	}
	return DefaultMountRoot
}
