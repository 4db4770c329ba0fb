// Package validation 把 binding 校验结果翻译为按字段汇总的错误集。
// 规则本身声明在请求结构体的 binding tag 上，这里只维护每个字段每条规则的提示语；
// 一次请求的所有字段错误都会被收集返回，而不是在第一个错误处停下。
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldSpec 单个字段的声明：对外的json名 + 每条规则的提示语
type FieldSpec struct {
	JSON     string
	Messages map[string]string
}

// Schema 以结构体字段名为键的消息表
type Schema map[string]FieldSpec

// Translate 把校验错误展开为 {json字段: [提示语...]}。
// 返回 false 表示 err 不是字段校验错误（比如JSON本身解析失败）。
func (s Schema) Translate(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		// dive 规则会产生 "Field[2]" 形式的字段名，归并到切片字段本身
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}

		spec, ok := s[field]
		if !ok {
			out[strings.ToLower(field)] = append(out[strings.ToLower(field)], "El valor no es válido.")
			continue
		}

		msg, ok := spec.Messages[fe.Tag()]
		if !ok {
			msg = "El valor no es válido."
		}
		if !contains(out[spec.JSON], msg) {
			out[spec.JSON] = append(out[spec.JSON], msg)
		}
	}
	return out, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
