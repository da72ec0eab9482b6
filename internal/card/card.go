package card

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"

	xerrors "FiberAgent-Registry/internal/errors"

	"gopkg.in/yaml.v3"
)

const (
	CodeCardNotFound xerrors.Code = "CARD_NOT_FOUND"
	CodeCardInvalid  xerrors.Code = "CARD_INVALID"
)

var (
	// ErrNotFound 表示描述文件不存在，调用方据此以状态码 1 退出。
	ErrNotFound = xerrors.New(CodeCardNotFound, "agent card not found")
	// ErrInvalid 表示描述文件内容无法解析或缺少 name 字段。
	ErrInvalid = xerrors.New(CodeCardInvalid, "invalid agent card")
)

func init() {
	xerrors.Register(CodeCardNotFound, xerrors.Attributes{
		Message:  "agent card not found",
		Severity: xerrors.SeverityInfo,
	})
	xerrors.Register(CodeCardInvalid, xerrors.Attributes{
		Message:  "agent card is malformed",
		Severity: xerrors.SeverityWarning,
	})
}

// Card 是读取后的智能体描述，加载后不再修改。
type Card struct {
	Path   string
	Fields map[string]any
}

// Name 返回描述中的展示名称。非字符串的值按其文本形式返回。
func (c *Card) Name() string {
	if c == nil {
		return ""
	}
	switch v := c.Fields["name"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Load 读取并解析 path 指向的描述文件。文件缺失时返回 ErrNotFound，
// 不做重试也不查找其他位置。
func Load(path string) (*Card, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, xerrors.Wrap(CodeCardNotFound, err, "",
				xerrors.WithMetadata("path", path))
		}
		return nil, xerrors.Wrap(xerrors.CodeUnknown, err, "read agent card",
			xerrors.WithMetadata("path", path))
	}

	fields, err := decode(content)
	if err != nil {
		return nil, xerrors.Wrap(CodeCardInvalid, err, "decode agent card",
			xerrors.WithMetadata("path", path))
	}

	if _, ok := fields["name"]; !ok {
		return nil, xerrors.New(CodeCardInvalid, "agent card has no name",
			xerrors.WithMetadata("path", path))
	}

	return &Card{Path: path, Fields: fields}, nil
}

// decode 优先按 JSON 解析，其余结构化文本交给 YAML 解析器。
func decode(content []byte) (map[string]any, error) {
	var fields map[string]any
	if json.Valid(content) {
		if err := json.Unmarshal(content, &fields); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(content, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, stdErrors.New("document is not a key-value mapping")
	}
	return fields, nil
}
