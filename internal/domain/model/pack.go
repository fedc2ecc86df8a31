package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// パック（サイズアソートの箱など）。1明細として独自価格で売る。
type Pack struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID     string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Contents      PackContents    `gorm:"type:jsonb;serializer:json" json:"contents"`
	TotalQuantity int64           `gorm:"not null" json:"total_quantity"`
}

// 入数合計は内訳の合計。0なら内訳から埋め、食い違いは保存しない。
func (p *Pack) BeforeSave(tx *gorm.DB) error {
	sum := p.Contents.Sum()
	if p.TotalQuantity == 0 {
		p.TotalQuantity = sum
		return nil
	}
	if p.TotalQuantity != sum {
		return fmt.Errorf("pack %s: total_quantity %d does not match contents %d", p.ID, p.TotalQuantity, sum)
	}
	return nil
}

// サイズ1つ分の入数
type PackContent struct {
	Size  string
	Count int64
}

// サイズ→入数。登録順を保つ。
type PackContents []PackContent

// 入数の合計
func (pc PackContents) Sum() int64 {
	var n int64
	for _, c := range pc {
		n += c.Count
	}
	return n
}

// {"S":1,"M":1} の形で、順番どおりに書き出す。
func (pc PackContents) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range pc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Size)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(c.Count, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// mapに入れるとキー順が消えるのでトークン単位で読む。
func (pc *PackContents) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*pc = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("pack contents: expected object")
	}

	out := PackContents{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		size, ok := tok.(string)
		if !ok {
			return fmt.Errorf("pack contents: expected size key")
		}

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("pack contents: count for %q: %w", size, err)
		}
		count, err := n.Int64()
		if err != nil {
			return fmt.Errorf("pack contents: count for %q: %w", size, err)
		}
		out = append(out, PackContent{Size: size, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*pc = out
	return nil
}
