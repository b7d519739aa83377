package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 表示输入为空或不合法，渲染在分配光栅图之前即失败。
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingProperty 表示模板占位符引用了数据对象上不存在的属性。
	ErrMissingProperty = errors.New("missing property")
	// ErrLabelIndexOutOfRange 表示 LineConfiguration.Label 超出 [1, LabelCount]。
	ErrLabelIndexOutOfRange = fmt.Errorf("%w: label index out of range", ErrInvalidArgument)
)
