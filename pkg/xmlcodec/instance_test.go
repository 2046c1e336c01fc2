package xmlcodec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceContainersAreNotShared(t *testing.T) {
	// Regression guard: every instance owns fresh containers; populating
	// one must never leak into another instance of the same schema.
	first := New(testDeployment)
	second := New(testDeployment)

	first.Put("extended_properties", "env", "prod")
	first.AppendScalar("subnet_names", "front")

	role := New(testRole)
	role.SetString("role_name", "web")
	first.Nested("role_list").AppendObject("roles", role)

	assert.Empty(t, second.Mapping("extended_properties"))
	assert.Empty(t, second.ScalarItems("subnet_names"))
	assert.False(t, second.Has("role_list"))
	assert.False(t, second.Has("extended_properties"))
}

func TestInstancePresence(t *testing.T) {
	inst := New(testDeployment)

	assert.False(t, inst.Has("name"))
	inst.SetString("name", "dep1")
	assert.True(t, inst.Has("name"))

	assert.False(t, inst.Has("role_list"))
	inst.Nested("role_list")
	assert.True(t, inst.Has("role_list"))
}

func TestInstanceUnknownFieldPanics(t *testing.T) {
	inst := New(testRole)

	assert.Panics(t, func() { inst.GetString("no_such_field") })
	assert.Panics(t, func() { inst.SetInt("role_name", 1) })
	assert.Panics(t, func() { inst.Objects("role_name") })
}

func TestInstanceEqual(t *testing.T) {
	build := func() *Instance {
		inst := New(testDeployment)
		inst.SetString("name", "dep1")
		inst.SetInt("upgrade_domain_count", 3)
		inst.Put("extended_properties", "a", "1")

		role := New(testRole)
		role.SetString("role_name", "web")
		inst.Nested("role_list").AppendObject("roles", role)

		return inst
	}

	a := build()
	b := build()
	assert.True(t, a.Equal(b))

	b.SetString("name", "dep2")
	assert.False(t, a.Equal(b))

	c := build()
	c.Put("extended_properties", "a", "2")
	assert.False(t, a.Equal(c))

	// Presence differences matter even when values are zero.
	d := build()
	d.SetBool("locked", false)
	assert.False(t, a.Equal(d))

	assert.False(t, a.Equal(New(testRole)))
	assert.False(t, a.Equal(nil))
}

func TestMapExport(t *testing.T) {
	created, err := time.Parse(dateTimeLayout, "2013-11-27T09:30:15")
	require.NoError(t, err)

	inst := New(testDeployment)
	inst.SetString("name", "dep1")
	inst.SetString("label", "hello")
	inst.SetTime("created_time", created)

	linux := New(testLinuxConfig)
	linux.SetString("host_name", "vm-0")
	require.NoError(t, inst.SetNested("configuration", linux))

	m := inst.Map()
	assert.Equal(t, "dep1", m["name"])
	assert.Equal(t, "hello", m["label"])
	assert.Equal(t, "2013-11-27T09:30:15.000000", m["created_time"])
	assert.Equal(t,
		map[string]any{"LinuxConfigurationSet": map[string]any{"host_name": "vm-0"}},
		m["configuration"])

	_, present := m["locked"]
	assert.False(t, present)
}

func TestFromMapRoundTrip(t *testing.T) {
	inst := New(testDeployment)
	inst.SetString("name", "dep1")
	inst.SetBool("locked", true)
	inst.SetInt("upgrade_domain_count", 2)
	inst.AppendScalar("subnet_names", "front")
	inst.Put("extended_properties", "env", "prod")

	role := New(testRole)
	role.SetString("role_name", "web")
	inst.Nested("role_list").AppendObject("roles", role)

	windows := New(testWindowsConfig)
	windows.SetString("computer_name", "win-0")
	require.NoError(t, inst.SetNested("configuration", windows))

	rebuilt, err := FromMap(testDeployment, normalize(t, inst.Map()))
	require.NoError(t, err)
	assert.True(t, inst.Equal(rebuilt))
}

func TestFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want func(error) bool
	}{
		{
			name: "unknown field",
			data: map[string]any{"bogus": "x"},
			want: func(err error) bool { return errors.Is(err, ErrUnknownField) },
		},
		{
			name: "scalar type mismatch",
			data: map[string]any{"upgrade_domain_count": "three"},
			want: IsTypeMismatch,
		},
		{
			name: "variant outside closed set",
			data: map[string]any{"configuration": map[string]any{"Role": map[string]any{}}},
			want: IsAmbiguousType,
		},
		{
			name: "variant without concrete name",
			data: map[string]any{"configuration": map[string]any{}},
			want: IsAmbiguousType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(testDeployment, tt.data)
			require.Error(t, err)
			assert.True(t, tt.want(err))
		})
	}
}

// normalize rewrites Map output into the shapes a yaml/json decoder would
// hand to FromMap (plain []any and map[string]any).
func normalize(t *testing.T, m map[string]any) map[string]any {
	t.Helper()

	out := make(map[string]any, len(m))

	for k, v := range m {
		switch tv := v.(type) {
		case map[string]any:
			out[k] = normalize(t, tv)
		case map[string]string:
			anyMap := make(map[string]any, len(tv))
			for mk, mv := range tv {
				anyMap[mk] = mv
			}

			out[k] = anyMap
		case []any:
			items := make([]any, len(tv))
			for i, item := range tv {
				if im, ok := item.(map[string]any); ok {
					items[i] = normalize(t, im)
				} else {
					items[i] = item
				}
			}

			out[k] = items
		default:
			out[k] = v
		}
	}

	return out
}
