package automount

import (
	"os"

	"github.com/kisun-bit/automount/sys/shell"
	"github.com/pkg/errors"
)

// Mounter 执行真实的挂载动作. 实现必须幂等地准备目标目录,
// 目录已存在不算错误.
type Mounter interface {
	Mount(device, target string) error
}

// ExecMounter 调用mount(8)完成挂载, 文件系统类型交由mount自行探测.
type ExecMounter struct{}

func NewExecMounter() *ExecMounter {
	return &ExecMounter{}
}

func (m *ExecMounter) Mount(device, target string) error {
	if err := os.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, "prepare mount dir %s", target)
	}
	rc, _, errOut := shell.ExecV1(shell.CommandStringForMount(device, target))
	if rc != 0 {
		return errors.Errorf("mount %s at %s exited with %d: %s", device, target, rc, errOut)
	}
	return nil
}
