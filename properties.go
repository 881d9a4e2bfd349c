package wangtile

import (
	"encoding/json"
	"sort"
	"strconv"
)

const (
	// Property types
	// see doc.mapeditor.org/en/stable/reference/tmx-map-format/#properties
	PropString = "string"
	PropInt    = "int"
	PropFloat  = "float"
	PropBool   = "bool"
)

// Properties wraps the custom properties Tiled lets you set on a tile.
// It's a friendlier []*Property (used by the raw XML) that keeps types.
type Properties struct {
	ints    map[string]int
	floats  map[string]float64
	strings map[string]string
	bools   map[string]bool
}

// NewProperties returns an empty properties
func NewProperties() *Properties {
	return &Properties{
		ints:    map[string]int{},
		floats:  map[string]float64{},
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

// Len returns the number of properties set.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.ints) + len(p.floats) + len(p.strings) + len(p.bools)
}

// Merge properties `o` into this properties
func (p *Properties) Merge(o *Properties) *Properties {
	if o == nil {
		return p
	}
	for k, v := range o.ints {
		p.SetInt(k, v)
	}
	for k, v := range o.floats {
		p.SetFloat(k, v)
	}
	for k, v := range o.strings {
		p.SetString(k, v)
	}
	for k, v := range o.bools {
		p.SetBool(k, v)
	}
	return p
}

// toList turns properties back into []*Property for the XML encoder.
// Output is sorted by name so encoding is stable.
func (p *Properties) toList() []*Property {
	if p == nil {
		return nil
	}
	ps := []*Property{}
	for k, v := range p.ints {
		ps = append(ps, &Property{Name: k, Value: strconv.Itoa(v), Type: PropInt})
	}
	for k, v := range p.floats {
		ps = append(ps, &Property{Name: k, Value: strconv.FormatFloat(v, 'g', -1, 64), Type: PropFloat})
	}
	for k, v := range p.bools {
		ps = append(ps, &Property{Name: k, Value: strconv.FormatBool(v), Type: PropBool})
	}
	for k, v := range p.strings {
		ps = append(ps, &Property{Name: k, Value: v, Type: PropString})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps
}

// newPropertiesFromList turns the XML []Property into our wrapper.
// Types we don't handle (color, file, object ...) are kept as strings.
func newPropertiesFromList(in []*Property) *Properties {
	ps := NewProperties()

	for _, i := range in {
		switch i.Type {
		case PropInt:
			v, _ := strconv.ParseInt(i.Value, 10, 64)
			ps.SetInt(i.Name, int(v))
		case PropFloat:
			v, _ := strconv.ParseFloat(i.Value, 64)
			ps.SetFloat(i.Name, v)
		case PropBool:
			ps.SetBool(i.Name, i.Value == "true")
		default:
			ps.SetString(i.Name, i.Value)
		}
	}

	return ps
}

// propertiesBlob is how properties are stored as JSON.
type propertiesBlob struct {
	I map[string]int     `json:"i,omitempty"`
	F map[string]float64 `json:"f,omitempty"`
	S map[string]string  `json:"s,omitempty"`
	B map[string]bool    `json:"b,omitempty"`
}

func (p *Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertiesBlob{I: p.ints, F: p.floats, S: p.strings, B: p.bools})
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	blob := propertiesBlob{}
	if err := json.Unmarshal(data, &blob); err != nil {
		return err
	}
	*p = *NewProperties()
	for k, v := range blob.I {
		p.ints[k] = v
	}
	for k, v := range blob.F {
		p.floats[k] = v
	}
	for k, v := range blob.S {
		p.strings[k] = v
	}
	for k, v := range blob.B {
		p.bools[k] = v
	}
	return nil
}

func (p *Properties) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

func (p *Properties) SetString(key, value string) {
	p.strings[key] = value
	p.clear(key, PropString)
}

func (p *Properties) Int(key string) (int, bool) {
	v, ok := p.ints[key]
	return v, ok
}

func (p *Properties) SetInt(key string, value int) {
	p.ints[key] = value
	p.clear(key, PropInt)
}

func (p *Properties) Float(key string) (float64, bool) {
	v, ok := p.floats[key]
	return v, ok
}

func (p *Properties) SetFloat(key string, value float64) {
	p.floats[key] = value
	p.clear(key, PropFloat)
}

func (p *Properties) Bool(key string) (bool, bool) {
	v, ok := p.bools[key]
	return v, ok
}

func (p *Properties) SetBool(key string, value bool) {
	p.bools[key] = value
	p.clear(key, PropBool)
}

// clear removes key from every type map except keep
func (p *Properties) clear(key, keep string) {
	if keep != PropInt {
		delete(p.ints, key)
	}
	if keep != PropFloat {
		delete(p.floats, key)
	}
	if keep != PropString {
		delete(p.strings, key)
	}
	if keep != PropBool {
		delete(p.bools, key)
	}
}
