package automount

import (
	"github.com/kisun-bit/automount/sys/shell"
	"github.com/pkg/errors"
)

// Revealer 运行结束后的可选展示动作. 失败不影响本轮执行的结果.
type Revealer interface {
	Reveal(path string) error
}

// XdgOpenRevealer 在桌面环境可用时用文件管理器打开挂载根目录.
// 无桌面环境(xdg-open缺失)时静默跳过.
type XdgOpenRevealer struct{}

func NewXdgOpenRevealer() *XdgOpenRevealer {
	return &XdgOpenRevealer{}
}

func (r *XdgOpenRevealer) Reveal(path string) error {
	if !shell.Available("xdg-open") {
		return nil
	}
	rc, _, errOut := shell.ExecV1(shell.CommandStringForXdgOpen(path))
	if rc != 0 {
		return errors.Errorf("xdg-open %s exited with %d: %s", path, rc, errOut)
	}
	return nil
}

// NopRevealer 无操作实现, 用于无界面场景与测试.
type NopRevealer struct{}

func (NopRevealer) Reveal(string) error { return nil }
