package carousel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHooksOrder(t *testing.T) {
	h := NewHooks()
	var calls []string
	for _, name := range []string{"a", "b", "c"} {
		h.OnClassNames(UpdateInnerClassNames, func(classes []string) []string {
			calls = append(calls, name)
			return append(classes, name)
		})
	}

	out := h.classNames(UpdateInnerClassNames, []string{"base"})
	assert.Equal(t, []string{"base", "a", "b", "c"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	assert.Equal(t, []string{"x"}, h.classNames(UpdateControlsClassNames, []string{"x"}), "other hooks are unaffected")
}

func TestNilHooks(t *testing.T) {
	var h *Hooks
	assert.Equal(t, []string{"x"}, h.classNames(UpdateInnerClassNames, []string{"x"}))
	assert.Equal(t, Attributes{{Name: "a", Value: "b"}}, h.attributes(UpdateWrapperAttributes, Attributes{{Name: "a", Value: "b"}}))
}

func TestHooksConcurrentRegistration(t *testing.T) {
	h := NewHooks()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.OnAttributes(UpdateWrapperAttributes, func(attrs Attributes) Attributes { return attrs })
			h.attributes(UpdateWrapperAttributes, nil)
		}()
	}
	wg.Wait()
	assert.Len(t, h.attrs[UpdateWrapperAttributes], 10)
}

func TestAttributes(t *testing.T) {
	attrs := Attributes{{Name: "id", Value: "x"}}

	attrs = attrs.Set("class", "a")
	attrs = attrs.Set("id", "y")
	assert.Equal(t, Attributes{{Name: "id", Value: "y"}, {Name: "class", Value: "a"}}, attrs)

	v, ok := attrs.Get("class")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)

	before := attrs
	attrs = attrs.Merge(Attributes{{Name: "class", Value: "b"}, {Name: "role", Value: "region"}})
	assert.Equal(t, map[string]string{"id": "y", "class": "b", "role": "region"}, attrs.Map())
	assert.Len(t, attrs, 3)
	assert.Equal(t, map[string]string{"id": "y", "class": "a"}, before.Map(), "merge leaves its receiver alone")
}

func TestStyles(t *testing.T) {
	s := Styles{"a": "tok-a", "b": "tok-b"}
	assert.Equal(t, "tok-a", s.Style("a"))
	assert.Equal(t, "", s.Style("missing"))
	assert.Equal(t, []string{"tok-a", "tok-b"}, s.Styles("a", "missing", "b"))
	assert.Empty(t, Styles(nil).Styles("a"))

	assert.Equal(t, "a b", ClassAttr([]string{" a ", "", "b"}))
	assert.Equal(t, "", ClassAttr(nil))
}
