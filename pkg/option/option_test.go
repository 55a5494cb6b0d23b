package option_test

import (
	"testing"

	"go.llib.dev/containerkit/pkg/option"
	"go.llib.dev/testcase/assert"
)

type SampleConfig struct {
	Foo string
	Bar int
}

func FooTo(v string) option.Option[SampleConfig] {
	return option.Func[SampleConfig](func(c *SampleConfig) { c.Foo = v })
}

func BarTo(v int) option.Option[SampleConfig] {
	return option.Func[SampleConfig](func(c *SampleConfig) { c.Bar = v })
}

func TestUse(t *testing.T) {
	t.Run("without options the zero config is returned", func(t *testing.T) {
		c := option.Use([]option.Option[SampleConfig]{})
		assert.Equal(t, SampleConfig{}, c)
	})

	t.Run("options apply in order", func(t *testing.T) {
		c := option.Use([]option.Option[SampleConfig]{FooTo("foo"), BarTo(42), FooTo("oof")})
		assert.Equal(t, SampleConfig{Foo: "oof", Bar: 42}, c)
	})
}

type InitConfig struct {
	Value string
}

func (c *InitConfig) Init() { c.Value = "default" }

func TestUse_initerConfig(t *testing.T) {
	c := option.Use([]option.Option[InitConfig]{})
	assert.Equal(t, "default", c.Value)
}
