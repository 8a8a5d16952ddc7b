package automount

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/kisun-bit/automount/disk/blockdev"
	"github.com/kisun-bit/automount/disk/classify"
	"github.com/kisun-bit/automount/util/basic"
	"github.com/kisun-bit/automount/util/logger"
	"github.com/tidwall/sjson"
)

// 运行报告中单个分区的处置结果.
const (
	ActionMounted = "mounted"
	ActionSkipped = "skipped"
	ActionFailed  = "failed"
)

const reasonTargetCollision = "target-collision"

// Pass 一轮完整的枚举-分类-过滤-挂载流程. 无跨轮状态,
// 重复执行会收敛到相同的挂载结果.
type Pass struct {
	Provider  blockdev.Provider
	Mounter   Mounter
	Revealer  Revealer
	MountRoot string
	SizeFloor uint64
}

// NewPass 以生产实现组装一轮流程.
func NewPass() *Pass {
	return &Pass{
		Provider:  blockdev.NewLsblkProvider(),
		Mounter:   NewExecMounter(),
		Revealer:  NewXdgOpenRevealer(),
		MountRoot: MountRoot(),
		SizeFloor: SizeFloorBytes,
	}
}

// Run 执行一轮. 仅设备枚举失败会返回错误; 单个分区的挂载失败
// 只记日志并继续处理后续分区. 返回值report为本轮的JSON运行报告.
func (p *Pass) Run() (report string, err error) {
	devices, err := p.Provider.Devices()
	if err != nil {
		return "", err
	}
	logger.Infof("enumerated %d block devices", len(devices))

	// 阶段一: 全量分区分类, 集合构造完成前不做任何过滤.
	osDisks := classify.Classify(devices)
	for _, disk := range osDisks.Disks() {
		reason, _ := osDisks.Reason(disk)
		logger.Infof("disk %s classified as OS disk (%s), all partitions excluded", disk, reason)
	}

	// 阶段二: 逐分区过滤并挂载.
	report = "[]"
	claimed := make(map[string]string) // 本轮内已占用的挂载目录 -> 设备
	mounted, failed := 0, 0
	for _, d := range devices {
		if !d.IsPartition() {
			continue
		}
		decision := Evaluate(d, osDisks, p.SizeFloor)
		if !decision.Eligible {
			p.logSkip(d, decision)
			report = appendReportEntry(report, d, ActionSkipped, decision.Reason, "")
			continue
		}

		target := filepath.Join(p.MountRoot, TargetName(d))
		if holder, ok := claimed[target]; ok {
			logger.Errorf("refusing to mount %s: target %s already claimed by %s in this run",
				d.Name, target, holder)
			failed++
			report = appendReportEntry(report, d, ActionFailed, reasonTargetCollision, target)
			continue
		}
		claimed[target] = d.Name

		if err := p.Mounter.Mount(d.Name, target); err != nil {
			logger.Warnf("mount %s failed: %v", d.Name, err)
			failed++
			report = appendReportEntry(report, d, ActionFailed, "mount-error", target)
			continue
		}
		logger.Infof("mounted %s (%s, %s) at %s",
			d.Name, d.Filesystem, basic.TrimAllSpace(humanize.IBytes(decision.SizeBytes)), target)
		mounted++
		report = appendReportEntry(report, d, ActionMounted, ReasonEligible, target)
	}

	logger.Infof("pass done: %d mounted, %d failed, %d os disks", mounted, failed, osDisks.Len())

	if p.Revealer != nil {
		if err := p.Revealer.Reveal(p.MountRoot); err != nil {
			logger.Debugf("reveal %s: %v", p.MountRoot, err)
		}
	}
	return report, nil
}

func (p *Pass) logSkip(d blockdev.Device, decision Decision) {
	switch decision.Reason {
	case ReasonMounted:
		logger.Debugf("skip %s: already mounted at %s", d.Name, d.Mountpoint)
	case ReasonNoFilesystem:
		logger.Debugf("skip %s: no filesystem", d.Name)
	case ReasonMalformedSize:
		logger.Warnf("skip %s: malformed size %q", d.Name, d.RawSize)
	case ReasonBelowFloor:
		logger.Infof("skip %s: size %s below floor %s", d.Name,
			basic.TrimAllSpace(humanize.IBytes(decision.SizeBytes)),
			basic.TrimAllSpace(humanize.IBytes(p.SizeFloor)))
	case ReasonOSDisk:
		logger.Infof("skip %s: partition of OS disk %s", d.Name, d.ParentOrSelf())
	}
}

func appendReportEntry(report string, d blockdev.Device, action, reason, target string) string {
	entry := map[string]any{
		"device": d.Name,
		"disk":   d.ParentOrSelf(),
		"action": action,
		"reason": reason,
	}
	if target != "" {
		entry["target"] = target
	}
	out, err := sjson.Set(report, "-1", entry)
	if err != nil {
		return report
	}
	return out
}
