package table

import "fmt"

// Column is one named, typed column of a Table.
type Column interface {
	Name() string
	Description() string
	Len() int
	// Kind names the stored value type: "float", "int", "text" or "region".
	Kind() string
	appendValue(v any) error
}

// FloatColumn stores float64 values.
type FloatColumn struct {
	name, description string
	data              []float64
}

// NewFloatColumn returns a float column holding data.
func NewFloatColumn(name, description string, data ...float64) *FloatColumn {
	return &FloatColumn{name: name, description: description, data: append([]float64(nil), data...)}
}

func (c *FloatColumn) Name() string        { return c.name }
func (c *FloatColumn) Description() string { return c.description }
func (c *FloatColumn) Len() int            { return len(c.data) }
func (c *FloatColumn) Kind() string        { return "float" }
func (c *FloatColumn) Data() []float64     { return c.data }

func (c *FloatColumn) appendValue(v any) error {
	switch t := v.(type) {
	case float64:
		c.data = append(c.data, t)
	case float32:
		c.data = append(c.data, float64(t))
	case int:
		c.data = append(c.data, float64(t))
	default:
		return fmt.Errorf("column %q: expected float, got %T", c.name, v)
	}
	return nil
}

// IntColumn stores int values.
type IntColumn struct {
	name, description string
	data              []int
}

func NewIntColumn(name, description string, data ...int) *IntColumn {
	return &IntColumn{name: name, description: description, data: append([]int(nil), data...)}
}

func (c *IntColumn) Name() string        { return c.name }
func (c *IntColumn) Description() string { return c.description }
func (c *IntColumn) Len() int            { return len(c.data) }
func (c *IntColumn) Kind() string        { return "int" }
func (c *IntColumn) Data() []int         { return c.data }

func (c *IntColumn) appendValue(v any) error {
	t, ok := v.(int)
	if !ok {
		return fmt.Errorf("column %q: expected int, got %T", c.name, v)
	}
	c.data = append(c.data, t)
	return nil
}

// TextColumn stores strings.
type TextColumn struct {
	name, description string
	data              []string
}

func NewTextColumn(name, description string, data ...string) *TextColumn {
	return &TextColumn{name: name, description: description, data: append([]string(nil), data...)}
}

func (c *TextColumn) Name() string        { return c.name }
func (c *TextColumn) Description() string { return c.description }
func (c *TextColumn) Len() int            { return len(c.data) }
func (c *TextColumn) Kind() string        { return "text" }
func (c *TextColumn) Data() []string      { return c.data }

func (c *TextColumn) appendValue(v any) error {
	t, ok := v.(string)
	if !ok {
		return fmt.Errorf("column %q: expected string, got %T", c.name, v)
	}
	c.data = append(c.data, t)
	return nil
}

// RegionColumn links each row to a row of a target table by index.
type RegionColumn struct {
	name, description string
	target            *Table
	data              []int
}

// NewRegionColumn returns a link column into target. Every index must address
// a row of target when the column is added to a table.
func NewRegionColumn(name, description string, target *Table, data ...int) *RegionColumn {
	return &RegionColumn{name: name, description: description, target: target, data: append([]int(nil), data...)}
}

func (c *RegionColumn) Name() string        { return c.name }
func (c *RegionColumn) Description() string { return c.description }
func (c *RegionColumn) Len() int            { return len(c.data) }
func (c *RegionColumn) Kind() string        { return "region" }
func (c *RegionColumn) Data() []int         { return c.data }
func (c *RegionColumn) Target() *Table      { return c.target }

func (c *RegionColumn) appendValue(v any) error {
	t, ok := v.(int)
	if !ok {
		return fmt.Errorf("column %q: expected row index, got %T", c.name, v)
	}
	if err := c.checkIndex(t); err != nil {
		return err
	}
	c.data = append(c.data, t)
	return nil
}

func (c *RegionColumn) checkIndex(i int) error {
	if c.target == nil {
		return fmt.Errorf("column %q: no target table", c.name)
	}
	if i < 0 || i >= c.target.Len() {
		return fmt.Errorf("column %q: index %d out of range for target %q with %d rows", c.name, i, c.target.Name, c.target.Len())
	}
	return nil
}
