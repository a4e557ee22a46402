package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileParamNames(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"/", nil},
		{"/users", nil},
		{"/users/:id", []string{"id"}},
		{"/users/:user/posts/:post", []string{"user", "post"}},
		{"/files/*path", []string{"path"}},
		{"/files/*", []string{"splat"}},
		{"/a/:b/*c", []string{"b", "c"}},
	}

	for _, tt := range tests {
		p, err := Compile(tt.template)
		require.NoError(t, err, tt.template)
		assert.Equal(t, tt.want, p.Names(), tt.template)
		assert.Equal(t, tt.template, p.Template())
	}
}

func TestNamedSegment(t *testing.T) {
	p, err := Compile("/users/:id")
	require.NoError(t, err)

	tests := []struct {
		path  string
		match bool
		id    string
	}{
		{"/users/123", true, "123"},
		{"/users/jane", true, "jane"},
		{"/users/a.b-c", true, "a.b-c"},
		{"/users/", false, ""},
		{"/users", false, ""},
		{"/users/123/edit", false, ""},
		{"users/123", false, ""},
	}

	for _, tt := range tests {
		params, ok := p.Match(tt.path)
		assert.Equal(t, tt.match, ok, tt.path)
		if tt.match {
			assert.Equal(t, tt.id, params["id"], tt.path)
		}
	}
}

func TestWildcard(t *testing.T) {
	p, err := Compile("/files/*path")
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"/files/a/b.txt", "a/b.txt"},
		{"/files/readme.md", "readme.md"},
		{"/files/a/b/c/d", "a/b/c/d"},
		// The wildcard matches zero characters too.
		{"/files/", ""},
	}

	for _, tt := range tests {
		params, ok := p.Match(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.want, params["path"], tt.path)
	}

	_, ok := p.Match("/files")
	assert.False(t, ok)
}

func TestUnnamedWildcardDefaultsToSplat(t *testing.T) {
	p, err := Compile("/assets/*")
	require.NoError(t, err)

	params, ok := p.Match("/assets/css/site.css")
	require.True(t, ok)
	assert.Equal(t, "css/site.css", params["splat"])
}

func TestLiteralDotAndDashAreNotMetacharacters(t *testing.T) {
	p, err := Compile("/feed.xml")
	require.NoError(t, err)

	_, ok := p.Match("/feed.xml")
	assert.True(t, ok)

	// An unescaped "." would also accept this.
	_, ok = p.Match("/feedaxml")
	assert.False(t, ok)

	p, err = Compile("/health-check")
	require.NoError(t, err)

	_, ok = p.Match("/health-check")
	assert.True(t, ok)
}

func TestStaticMatchHasNoParams(t *testing.T) {
	p, err := Compile("/about")
	require.NoError(t, err)

	params, ok := p.Match("/about")
	require.True(t, ok)
	assert.NotNil(t, params)
	assert.Empty(t, params)
}

func TestFullAnchoring(t *testing.T) {
	p, err := Compile("/users")
	require.NoError(t, err)

	for _, path := range []string{"/users/", "/users/1", "/api/users", "users"} {
		_, ok := p.Match(path)
		assert.False(t, ok, path)
	}
}

func TestCompileIsIdempotent(t *testing.T) {
	first, err := Compile("/users/:id/files/*path")
	require.NoError(t, err)
	second, err := Compile("/users/:id/files/*path")
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())

	for _, path := range []string{"/users/1/files/a/b", "/users//files/a", "/users/1/files/", "/other"} {
		p1, ok1 := first.Match(path)
		p2, ok2 := second.Match(path)
		assert.Equal(t, ok1, ok2, path)
		assert.Equal(t, p1, p2, path)
	}
}

func TestParamFollowedByLiteral(t *testing.T) {
	p, err := Compile("/users/:id/edit")
	require.NoError(t, err)
	require.Equal(t, []string{"id"}, p.Names())

	params, ok := p.Match("/users/42/edit")
	require.True(t, ok)
	assert.Equal(t, "42", params["id"])

	_, ok = p.Match("/users/42")
	assert.False(t, ok)
}

func TestCompileEmptyParamName(t *testing.T) {
	for _, template := range []string{"/a/:/b", "/a/:", "/:"} {
		_, err := Compile(template)
		assert.Error(t, err, template)
	}

	// A bare "*" is not an error; it captures under "splat".
	_, err := Compile("/a/*")
	assert.NoError(t, err)
}

func TestCompileError(t *testing.T) {
	// Characters other than "." and "-" pass through to the matcher, so an
	// unbalanced "(" cannot compile.
	_, err := Compile("/bad(template")
	assert.Error(t, err)
}
