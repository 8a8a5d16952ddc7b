package blockdev

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const lsblkFixture = `{
   "blockdevices": [
      {"name":"/dev/sda", "type":"disk", "pkname":null, "fstype":null, "mountpoint":null,
       "partlabel":null, "label":null, "parttype":null, "size":500107862016,
       "children": [
          {"name":"/dev/sda1", "type":"part", "pkname":"/dev/sda", "fstype":"vfat",
           "mountpoint":"/boot/efi", "partlabel":"EFI system partition", "label":null,
           "parttype":"C12A7328-F81F-11D2-BA4B-00A0C93EC93B", "size":536870912},
          {"name":"/dev/sda2", "type":"part", "pkname":null, "fstype":"ext4",
           "mountpoint":"/", "partlabel":null, "label":null,
           "parttype":"0fc63daf-8483-4772-8e79-3d69d8477de4", "size":"499569991680"}
       ]},
      {"name":"/dev/sdb", "type":"disk", "pkname":null, "fstype":null, "mountpoint":null,
       "partlabel":null, "label":null, "parttype":null, "size":"2000398934016",
       "children": [
          {"name":"/dev/sdb1", "type":"part", "pkname":"/dev/sdb", "fstype":"ntfs",
           "mountpoint":null, "partlabel":"Archive", "label":"Archive",
           "parttype":"0fc63daf-8483-4772-8e79-3d69d8477de4", "size":"2000397885440"}
       ]},
      {"name":"/dev/sr0", "type":"rom", "pkname":null, "fstype":null, "mountpoint":null,
       "partlabel":null, "label":null, "parttype":null, "size":1073741312},
      {"name":"/dev/loop0", "type":"loop", "pkname":null, "fstype":"squashfs",
       "mountpoint":"/snap/core/1", "partlabel":null, "label":null, "parttype":null, "size":4096}
   ]
}`

func TestParseLsblkJSON(t *testing.T) {
	devices, err := ParseLsblkJSON(lsblkFixture)
	require.NoError(t, err)

	// rom与loop不产生记录.
	require.Len(t, devices, 5)

	byName := make(map[string]Device)
	for _, d := range devices {
		byName[d.Name] = d
	}

	sda := byName["/dev/sda"]
	require.True(t, sda.IsDisk())
	require.Equal(t, "/dev/sda", sda.Parent)
	require.Equal(t, "500107862016", sda.RawSize)

	sda1 := byName["/dev/sda1"]
	require.True(t, sda1.IsPartition())
	require.Equal(t, "/dev/sda", sda1.Parent)
	require.Equal(t, "vfat", sda1.Filesystem)
	require.Equal(t, "/boot/efi", sda1.Mountpoint)
	require.Equal(t, "EFI system partition", sda1.PartLabel)
	// 分区类型GUID统一转为小写.
	require.Equal(t, "c12a7328-f81f-11d2-ba4b-00a0c93ec93b", sda1.PartType)
	require.Equal(t, "536870912", sda1.RawSize)

	// pkname为null时继承外层设备.
	sda2 := byName["/dev/sda2"]
	require.Equal(t, "/dev/sda", sda2.Parent)
	// 字符串形式的SIZE同样可用.
	require.Equal(t, "499569991680", sda2.RawSize)

	sdb1 := byName["/dev/sdb1"]
	require.Equal(t, "", sdb1.Mountpoint)
	require.Equal(t, "Archive", sdb1.PartLabel)
}

func TestParseLsblkJSONPreservesOrder(t *testing.T) {
	devices, err := ParseLsblkJSON(lsblkFixture)
	require.NoError(t, err)
	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.Name)
	}
	require.Equal(t, []string{"/dev/sda", "/dev/sda1", "/dev/sda2", "/dev/sdb", "/dev/sdb1"}, names)
}

func TestParseLsblkJSONUnusable(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"foo": 1}`, `{"blockdevices": 3}`} {
		_, err := ParseLsblkJSON(raw)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrDeviceQuery))
	}
}

func TestParentDisk(t *testing.T) {
	devices := []Device{
		{Name: "/dev/sda", Kind: KindDisk, Parent: "/dev/sda"},
		{Name: "/dev/sda1", Kind: KindPartition, Parent: "/dev/sda"},
		{Name: "/dev/sdx1", Kind: KindPartition, Parent: ""},
	}
	require.Equal(t, "/dev/sda", ParentDisk(devices, "/dev/sda1"))
	require.Equal(t, "/dev/sda", ParentDisk(devices, "/dev/sda"))
	// 无父设备链接时回退为自身.
	require.Equal(t, "/dev/sdx1", ParentDisk(devices, "/dev/sdx1"))
	// 未知设备同样回退, 不报错.
	require.Equal(t, "/dev/unknown", ParentDisk(devices, "/dev/unknown"))
}

func TestParentOrSelf(t *testing.T) {
	require.Equal(t, "/dev/sda",
		Device{Name: "/dev/sda1", Kind: KindPartition, Parent: "/dev/sda"}.ParentOrSelf())
	require.Equal(t, "/dev/sdx1",
		Device{Name: "/dev/sdx1", Kind: KindPartition}.ParentOrSelf())
	require.Equal(t, "/dev/sda",
		Device{Name: "/dev/sda", Kind: KindDisk, Parent: "/dev/sda"}.ParentOrSelf())
}
