package carousel

import (
	"slices"
	"sync"
)

// Hook names an extension point where registered transforms can rewrite
// class names or attributes while the view is being built.
type Hook string

const (
	UpdateWrapperAttributes             Hook = "updateWrapperAttributes"
	UpdateWrapperDataAttributes         Hook = "updateWrapperDataAttributes"
	UpdateWrapperClassNames             Hook = "updateWrapperClassNames"
	UpdateInnerClassNames               Hook = "updateInnerClassNames"
	UpdateControlsClassNames            Hook = "updateControlsClassNames"
	UpdateControlPreviousClassNames     Hook = "updateControlPreviousClassNames"
	UpdateControlPreviousIconClassNames Hook = "updateControlPreviousIconClassNames"
	UpdateControlNextClassNames         Hook = "updateControlNextClassNames"
	UpdateControlNextIconClassNames     Hook = "updateControlNextIconClassNames"
	UpdateControlTextClassNames         Hook = "updateControlTextClassNames"
	UpdateIndicatorsClassNames          Hook = "updateIndicatorsClassNames"
)

type (
	ClassTransform     func(classes []string) []string
	AttributeTransform func(attrs Attributes) Attributes
)

// Hooks holds the transforms registered per extension point.
// They run synchronously in registration order. A nil *Hooks has no transforms.
type Hooks struct {
	mu      sync.RWMutex
	classes map[Hook][]ClassTransform
	attrs   map[Hook][]AttributeTransform
}

// NewHooks returns an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{
		classes: make(map[Hook][]ClassTransform),
		attrs:   make(map[Hook][]AttributeTransform),
	}
}

// OnClassNames registers fn to rewrite the class names computed at hook.
func (h *Hooks) OnClassNames(hook Hook, fn ClassTransform) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.classes[hook] = append(h.classes[hook], fn)
}

// OnAttributes registers fn to rewrite the attributes computed at hook.
// fn may modify and return the slice it receives.
func (h *Hooks) OnAttributes(hook Hook, fn AttributeTransform) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attrs[hook] = append(h.attrs[hook], fn)
}

func (h *Hooks) classNames(hook Hook, classes []string) []string {
	if h == nil {
		return classes
	}
	h.mu.RLock()
	fns := h.classes[hook]
	h.mu.RUnlock()

	for _, fn := range fns {
		classes = fn(classes)
	}
	return classes
}

func (h *Hooks) attributes(hook Hook, attrs Attributes) Attributes {
	if h == nil {
		return attrs
	}
	h.mu.RLock()
	fns := h.attrs[hook]
	h.mu.RUnlock()

	for _, fn := range fns {
		attrs = fn(attrs)
	}
	return attrs
}

// Attr is a single HTML attribute. Values are raw, escaping happens at render time.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes is an ordered set of HTML attributes.
type Attributes []Attr

// Get returns the value of the named attribute.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the named attribute, or appends it. An existing attribute is
// replaced in a's backing array, so other holders of a see the change.
func (a Attributes) Set(name, value string) Attributes {
	for i, attr := range a {
		if attr.Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Merge returns a copy of a with every attribute of other set on it, so later values win.
// a itself is left untouched.
func (a Attributes) Merge(other Attributes) Attributes {
	a = slices.Clone(a)
	for _, attr := range other {
		a = a.Set(attr.Name, attr.Value)
	}
	return a
}

// Map returns the attributes as a map, mostly useful for JSON and tests.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}
