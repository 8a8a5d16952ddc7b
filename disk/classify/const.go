package classify

// 系统盘判定的三组固定特征. 三者相互独立, 任一命中即将整块父磁盘
// 判为系统盘.

// OS安装惯用的挂载点, 需精确匹配.
var osMountpoints = []string{
	"/",
	"/boot",
	"/boot/efi",
}

// GPT分区类型GUID白名单(小写). 注意: 通用"Linux filesystem"类型
// 0fc63daf-8483-4772-8e79-3d69d8477de4不在其中, 普通数据盘即是该类型.
var osPartTypeIDs = []string{
	"c12a7328-f81f-11d2-ba4b-00a0c93ec93b", // EFI System Partition
	"4f68bc34-7e17-11e5-9e09-fcdbf57c2f3f", // Linux root (x86-64)
	"21686148-6449-6e6f-744e-656564454649", // BIOS boot
}

// 标签关键字, 与PartLabel+Label拼接后的小写串做子串匹配.
var osLabelKeywords = []string{
	"efi",
	"esp",
	"boot",
	"system",
	"windows",
	"ubuntu",
	"debian",
	"fedora",
	// 不可用裸"arch": 子串匹配会误伤"Archive"这类纯数据卷标签.
	"archlinux",
	"manjaro",
	"suse",
	"mint",
	"centos",
	"root",
}
