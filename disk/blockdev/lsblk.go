package blockdev

import (
	"strings"

	"github.com/kisun-bit/automount/sys/shell"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrDeviceQuery 设备拓扑查询原语不可用或输出不可解析. 属致命错误,
// 调用方应立即终止本轮执行.
var ErrDeviceQuery = errors.New("block device query failed")

// Provider 返回当前时刻完整的块设备快照. 无副作用.
type Provider interface {
	Devices() ([]Device, error)
}

// LsblkProvider 通过一次lsblk --json调用获取设备拓扑与字节尺寸.
type LsblkProvider struct{}

func NewLsblkProvider() *LsblkProvider {
	return &LsblkProvider{}
}

func (p *LsblkProvider) Devices() ([]Device, error) {
	rc, out, errOut := shell.ExecV1(shell.CommandStringForLsblk())
	if rc != 0 {
		return nil, errors.Wrapf(ErrDeviceQuery, "`lsblk` exited with %d: %s", rc, errOut)
	}
	return ParseLsblkJSON(out)
}

// ParseLsblkJSON 将lsblk --json输出解析为扁平的Device集合,
// 保持lsblk的枚举顺序. children条目缺少pkname时继承外层设备为父设备.
func ParseLsblkJSON(raw string) ([]Device, error) {
	root := gjson.Get(raw, "blockdevices")
	if !root.Exists() || !root.IsArray() {
		return nil, errors.Wrapf(ErrDeviceQuery, "no `blockdevices` in lsblk output")
	}
	var devices []Device
	for _, entry := range root.Array() {
		devices = appendDeviceTree(devices, entry, "")
	}
	return devices, nil
}

func appendDeviceTree(devices []Device, entry gjson.Result, enclosing string) []Device {
	name := entry.Get("name").String()
	kind := Kind(entry.Get("type").String())

	if name != "" && (kind == KindDisk || kind == KindPartition) {
		parent := entry.Get("pkname").String()
		if parent == "" {
			parent = enclosing
		}
		if kind == KindDisk {
			parent = name
		}
		// util-linux新旧版本的--json输出中SIZE既可能是数字也可能是字符串,
		// 数字走Raw以避免float64精度截断.
		size := entry.Get("size")
		rawSize := size.String()
		if size.Type == gjson.Number {
			rawSize = size.Raw
		}
		devices = append(devices, Device{
			Name:       name,
			Kind:       kind,
			Parent:     parent,
			Filesystem: entry.Get("fstype").String(),
			Mountpoint: entry.Get("mountpoint").String(),
			PartLabel:  entry.Get("partlabel").String(),
			Label:      entry.Get("label").String(),
			PartType:   strings.ToLower(entry.Get("parttype").String()),
			RawSize:    rawSize,
		})
	}
	for _, child := range entry.Get("children").Array() {
		devices = appendDeviceTree(devices, child, name)
	}
	return devices
}
