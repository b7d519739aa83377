package binding

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotFound 表示数据对象上不存在被引用的属性。
var ErrNotFound = errors.New("property not found")

var exprPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// HasPlaceholder reports whether text contains a {Name} placeholder.
func HasPlaceholder(text string) bool {
	return exprPattern.MatchString(text)
}

// Replace 将文本中的 {PropertyName} 替换为 data 上对应属性的字符串形式。
// 属性不存在时返回 ErrNotFound，不做空白替换。
func Replace(text string, data any) (string, error) {
	var firstErr error
	out := exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		if firstErr != nil {
			return match
		}
		groups := exprPattern.FindStringSubmatch(match)
		name := strings.TrimSpace(groups[1])
		val, err := Lookup(data, name)
		if err != nil {
			firstErr = err
			return match
		}
		return format(val)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// Normalize 将属性名首字母大写，与导出字段的命名保持一致。
func Normalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Lookup 在 data 上查找属性 name：结构体按导出字段或无参方法查找，
// 字符串键的 map 先按规范化后的名称、再按原始名称查找。
func Lookup(data any, name string) (any, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	key := Normalize(name)
	if data == nil {
		return nil, fmt.Errorf("%w: %s (no data)", ErrNotFound, key)
	}

	v := reflect.ValueOf(data)
	nilPtr := v.Kind() == reflect.Pointer && v.IsNil()
	if m := v.MethodByName(key); !nilPtr && m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0].Interface(), nil
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: %s (nil data)", ErrNotFound, key)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if f, ok := v.Type().FieldByName(key); ok && f.IsExported() {
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, key, err)
			}
			return fv.Interface(), nil
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}
		for _, k := range []string{key, name} {
			mv := v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key()))
			if mv.IsValid() {
				return mv.Interface(), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

func format(val any) string {
	if val == nil {
		return ""
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	if s, ok := val.(fmt.Stringer); ok {
		return s.String()
	}
	if rv.Kind() == reflect.Pointer {
		val = rv.Elem().Interface()
	}
	return fmt.Sprint(val)
}
