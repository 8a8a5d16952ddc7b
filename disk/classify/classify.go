package classify

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/kisun-bit/automount/disk/blockdev"
	"github.com/thoas/go-funk"
)

// DiskSet 系统盘集合, 按判入顺序保序. 构造完成后只读.
type DiskSet struct {
	m *orderedmap.OrderedMap[string, string]
}

func NewDiskSet() *DiskSet {
	return &DiskSet{m: orderedmap.NewOrderedMap[string, string]()}
}

func (s *DiskSet) add(disk, reason string) {
	if _, ok := s.m.Get(disk); ok {
		return
	}
	s.m.Set(disk, reason)
}

func (s *DiskSet) Contains(disk string) bool {
	_, ok := s.m.Get(disk)
	return ok
}

// Reason 返回磁盘首次被判为系统盘时命中的规则名.
func (s *DiskSet) Reason(disk string) (string, bool) {
	return s.m.Get(disk)
}

func (s *DiskSet) Len() int {
	return s.m.Len()
}

// Disks 按判入顺序返回全部系统盘路径.
func (s *DiskSet) Disks() []string {
	disks := make([]string, 0, s.m.Len())
	for el := s.m.Front(); el != nil; el = el.Next() {
		disks = append(disks, el.Key)
	}
	return disks
}

// Rule 单条系统盘判定规则.
type Rule struct {
	Name  string
	Match func(d blockdev.Device) bool
}

// Rules 规则按声明顺序求值, 单个分区首条命中即止.
func Rules() []Rule {
	return []Rule{
		{
			Name: "os-mountpoint",
			Match: func(d blockdev.Device) bool {
				return d.Mountpoint != "" && funk.InStrings(osMountpoints, d.Mountpoint)
			},
		},
		{
			Name: "os-parttype",
			Match: func(d blockdev.Device) bool {
				return d.PartType != "" && funk.InStrings(osPartTypeIDs, strings.ToLower(d.PartType))
			},
		},
		{
			Name: "os-label",
			Match: func(d blockdev.Device) bool {
				labels := strings.ToLower(d.PartLabel + d.Label)
				if labels == "" {
					return false
				}
				for _, kw := range osLabelKeywords {
					if strings.Contains(labels, kw) {
						return true
					}
				}
				return false
			},
		},
	}
}

// Classify 按枚举顺序单次正向扫描全部分区记录, 产出系统盘集合.
// 分类偏保守: 误判为系统盘只会少挂一块盘, 漏判才是危险方向,
// 因此三组独立特征叠加使用.
func Classify(devices []blockdev.Device) *DiskSet {
	rules := Rules()
	set := NewDiskSet()
	for _, d := range devices {
		if !d.IsPartition() {
			continue
		}
		for _, rule := range rules {
			if !rule.Match(d) {
				continue
			}
			set.add(blockdev.ParentDisk(devices, d.Name), rule.Name)
			break
		}
	}
	return set
}
