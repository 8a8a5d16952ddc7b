package blockdev

import "path/filepath"

type Kind string

const (
	KindDisk      Kind = "disk"
	KindPartition Kind = "part"
)

// Device 内核暴露的单个块设备记录. lsblk中TYPE不为disk/part的设备
// (rom、loop、lvm等)不会生成记录.
type Device struct {
	Name       string `json:"name"`       // 设备路径, 唯一键
	Kind       Kind   `json:"kind"`       // disk或part
	Parent     string `json:"parent"`     // 所属物理磁盘路径, 磁盘记录为自身
	Filesystem string `json:"filesystem"` // 空值表示无文件系统
	Mountpoint string `json:"mountpoint"` // 空值表示未挂载
	PartLabel  string `json:"part_label"`
	Label      string `json:"label"`
	PartType   string `json:"part_type"` // GPT分区类型GUID, 统一小写
	RawSize    string `json:"raw_size"`  // 字节数原始串, 延迟解析
}

func (d Device) IsDisk() bool {
	return d.Kind == KindDisk
}

func (d Device) IsPartition() bool {
	return d.Kind == KindPartition
}

// Basename 设备路径的基名, 如/dev/sdb1 -> sdb1.
func (d Device) Basename() string {
	return filepath.Base(d.Name)
}

// ParentOrSelf 本设备所属物理磁盘路径, 无父设备链接时回退为自身.
func (d Device) ParentOrSelf() string {
	if d.IsPartition() && d.Parent != "" {
		return d.Parent
	}
	return d.Name
}

// ParentDisk 返回包含指定设备的物理磁盘路径. 磁盘返回自身;
// 内核未提供父设备链接时回退为设备自身路径, 不报错.
func ParentDisk(devices []Device, name string) string {
	for _, d := range devices {
		if d.Name != name {
			continue
		}
		if d.IsPartition() && d.Parent != "" {
			return d.Parent
		}
		return d.Name
	}
	return name
}
