package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DescriptorWidth is the row width of a single ORB descriptor in bytes.
const DescriptorWidth = 32

// FeatureRecord is the persisted visual-feature summary of a catalog image.
// Depending on the configured extraction strategy either the class/color
// fields or the descriptor blob is populated.
type FeatureRecord struct {
	ClassLabel  string         `json:"class_name"`
	Confidence  float64        `json:"confidence,omitempty"`
	Color       *DominantColor `json:"color,omitempty"`
	Descriptors DescriptorBlob `json:"-"`
}

type DominantColor struct {
	RGB  [3]uint8 `json:"rgb_color"`
	Name string   `json:"color_name"`
	Hex  string   `json:"hex_color"`
}

// Value serializes the record into the jsonb column the catalog store keeps
// next to each sofa row. Descriptors live in their own bytea column and are
// deliberately excluded here.
func (f FeatureRecord) Value() (driver.Value, error) {
	type persisted struct {
		ClassName string  `json:"class_name"`
		ColorName string  `json:"color_name,omitempty"`
		HexColor  string  `json:"hex_color,omitempty"`
		RGBColor  *[3]int `json:"rgb_color,omitempty"`
	}

	p := persisted{ClassName: f.ClassLabel}
	if f.Color != nil {
		p.ColorName = f.Color.Name
		p.HexColor = f.Color.Hex
		rgb := [3]int{int(f.Color.RGB[0]), int(f.Color.RGB[1]), int(f.Color.RGB[2])}
		p.RGBColor = &rgb
	}

	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding feature record, %w", err)
	}

	return string(b), nil
}

func (f *FeatureRecord) Scan(src any) error {
	if src == nil {
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scanning feature record from %T, %w", src, ErrCorruptFeatures)
	}

	var p struct {
		ClassName string `json:"class_name"`
		ColorName string `json:"color_name"`
		HexColor  string `json:"hex_color"`
		RGBColor  []int  `json:"rgb_color"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decoding feature record, %w", err)
	}

	f.ClassLabel = p.ClassName
	if p.ColorName != "" || len(p.RGBColor) == 3 {
		c := &DominantColor{Name: p.ColorName, Hex: p.HexColor}
		if len(p.RGBColor) == 3 {
			for i, v := range p.RGBColor {
				if v < 0 || v > 255 {
					return fmt.Errorf("rgb channel %d out of range, %w", v, ErrCorruptFeatures)
				}
				c.RGB[i] = uint8(v)
			}
		}
		f.Color = c
	}

	return nil
}

// DescriptorBlob is a flattened sequence of fixed-width ORB descriptor rows.
// An empty blob is a valid "no keypoints found" outcome.
type DescriptorBlob []byte

// Scan accepts the nullable bytea column. NULL means extraction has not run
// yet or the configured strategy stores no descriptors.
func (d *DescriptorBlob) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append(DescriptorBlob(nil), v...)
	case string:
		*d = DescriptorBlob(v)
	default:
		return fmt.Errorf("scanning descriptor blob from %T, %w", src, ErrCorruptFeatures)
	}

	return nil
}

func (d DescriptorBlob) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}

	return []byte(d), nil
}

// Floats reconstructs the blob as a flat numeric vector for distance
// computation. A length that is not a multiple of the descriptor width means
// the stored blob is corrupt.
func (d DescriptorBlob) Floats() ([]float64, error) {
	if len(d)%DescriptorWidth != 0 {
		return nil, fmt.Errorf("blob of %d bytes is not a multiple of %d, %w", len(d), DescriptorWidth, ErrCorruptBlob)
	}

	out := make([]float64, len(d))
	for i, b := range d {
		out[i] = float64(b)
	}

	return out, nil
}
