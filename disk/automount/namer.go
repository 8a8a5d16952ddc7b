package automount

import (
	"strings"

	"github.com/kisun-bit/automount/disk/blockdev"
)

// TargetName 派生分区挂载子目录名: 分区标签(空格替换为下划线)优先,
// 无标签时回退为设备基名. 不同磁盘上同名标签的碰撞不在此处消解,
// 由执行阶段显式报错.
func TargetName(d blockdev.Device) string {
	label := strings.TrimSpace(d.PartLabel)
	if label != "" {
		return strings.ReplaceAll(label, " ", "_")
	}
	return d.Basename()
}
