package automount

import (
	"github.com/kisun-bit/automount/disk/blockdev"
	"github.com/kisun-bit/automount/disk/classify"
	"github.com/kisun-bit/automount/util/basic"
)

// 单个分区被跳过或放行的原因码, 同时进入日志与运行报告.
const (
	ReasonEligible      = "eligible"
	ReasonMounted       = "already-mounted"
	ReasonNoFilesystem  = "no-filesystem"
	ReasonMalformedSize = "malformed-size"
	ReasonBelowFloor    = "below-size-floor"
	ReasonOSDisk        = "os-disk"
)

// Decision 单个分区的挂载决策.
type Decision struct {
	Eligible  bool
	Reason    string
	SizeBytes uint64 // Reason为malformed-size时无意义
}

// Evaluate 按固定顺序对单个分区做合格性判定. 检查顺序:
// 已挂载 -> 无文件系统 -> 尺寸非法 -> 低于尺寸下限 -> 所在磁盘为系统盘.
// 集合osDisks必须在全部分区分类完成后构造, 本函数只读取.
func Evaluate(d blockdev.Device, osDisks *classify.DiskSet, sizeFloor uint64) Decision {
	if d.Mountpoint != "" {
		return Decision{Reason: ReasonMounted}
	}
	if d.Filesystem == "" {
		return Decision{Reason: ReasonNoFilesystem}
	}
	size, ok := basic.ParseSizeBytes(d.RawSize)
	if !ok {
		return Decision{Reason: ReasonMalformedSize}
	}
	if size < sizeFloor {
		return Decision{Reason: ReasonBelowFloor, SizeBytes: size}
	}
	if osDisks.Contains(d.ParentOrSelf()) {
		return Decision{Reason: ReasonOSDisk, SizeBytes: size}
	}
	return Decision{Eligible: true, Reason: ReasonEligible, SizeBytes: size}
}
