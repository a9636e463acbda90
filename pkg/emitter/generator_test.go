package emitter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/reactgen/pkg/tree"
)

func sampleDocument() *tree.Document {
	return &tree.Document{Pages: []tree.PageNode{
		{
			Label: "Home",
			Contents: []tree.ComponentNode{
				{
					Type:       "div",
					Name:       "Card",
					Attributes: tree.Attributes{{Name: "class", Value: "card"}},
					Styles:     []string{"color: red", "invalid"},
					Children: []tree.ComponentNode{
						{Type: "h2", Attributes: tree.Attributes{{Name: "id", Value: "title"}}},
					},
				},
			},
		},
		{
			Label:    "About",
			Contents: []tree.ComponentNode{{Type: "footer", Name: "Footer"}},
		},
	}}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTranspile_ExternalStyles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	require.NoError(t, Transpile(sampleDocument(), root, false))

	card := readFile(t, filepath.Join(root, "components", "Card.jsx"))
	assert.Equal(t, `import './Card.css';

export default function Card() {
 return (
    <div className="card" classname="Card">
      <h2 id="title" />
    </div>
 );
}`, card)

	css := readFile(t, filepath.Join(root, "components", "Card.css"))
	assert.Equal(t, ".Card {\n  color: red;\n  invalid;\n}", css)

	// A component without styles still gets an (empty) stylesheet
	assert.Equal(t, ".Footer {\n}", readFile(t, filepath.Join(root, "components", "Footer.css")))

	home := readFile(t, filepath.Join(root, "pages", "Home.jsx"))
	assert.Contains(t, home, "import Card from '../components/Card';")
	assert.Contains(t, home, "      <Card />")

	app := readFile(t, filepath.Join(root, "App.jsx"))
	assert.Contains(t, app, "import Home from './pages/Home';\nimport About from './pages/About';")
	assert.Contains(t, app, `        <Route path="/home" element={<Home />} />
        <Route path="/about" element={<About />} />`)

	assert.Equal(t, IndexHTML, readFile(t, filepath.Join(root, "index.html")))
	assert.NoFileExists(t, filepath.Join(root, "pages", "App.jsx"))
}

func TestGenerate_InlineStyles(t *testing.T) {
	fs := NewMemoryFS()
	report, err := New(Options{OutputRoot: "site", InlineStyles: true, FS: fs}).Generate(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("site", "App.jsx"),
		filepath.Join("site", "components", "Card.jsx"),
		filepath.Join("site", "components", "Footer.jsx"),
		filepath.Join("site", "index.html"),
		filepath.Join("site", "pages", "About.jsx"),
		filepath.Join("site", "pages", "Home.jsx"),
	}, fs.Files())

	card, ok := fs.ReadFile(filepath.Join("site", "components", "Card.jsx"))
	require.True(t, ok)
	assert.Contains(t, string(card), `<div className="card" style={'color': 'red'}>`)
	assert.NotContains(t, string(card), "import './Card.css'")

	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, 2, report.Components)
	assert.Len(t, report.Files, 6)
	assert.Empty(t, report.DuplicateRoutes)
}

func TestGenerate_EmptyDocument(t *testing.T) {
	for _, doc := range []*tree.Document{nil, {}} {
		fs := NewMemoryFS()
		report, err := New(Options{FS: fs}).Generate(doc)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(DefaultOutputRoot, "App.jsx"),
			filepath.Join(DefaultOutputRoot, "index.html"),
		}, fs.Files())
		assert.Zero(t, report.Pages)

		app, _ := fs.ReadFile(filepath.Join(DefaultOutputRoot, "App.jsx"))
		assert.NotContains(t, string(app), "./pages/")
		assert.NotContains(t, string(app), "<Route ")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, second := NewMemoryFS(), NewMemoryFS()
	_, err := New(Options{OutputRoot: "out", FS: first}).Generate(sampleDocument())
	require.NoError(t, err)
	_, err = New(Options{OutputRoot: "out", FS: second}).Generate(sampleDocument())
	require.NoError(t, err)

	require.Equal(t, first.Files(), second.Files())
	for _, path := range first.Files() {
		a, _ := first.ReadFile(path)
		b, _ := second.ReadFile(path)
		assert.Equal(t, string(a), string(b), path)
	}
}

func TestGenerate_MissingFieldWritesNothing(t *testing.T) {
	doc := sampleDocument()
	doc.Pages[1].Contents[0].Name = ""

	fs := NewMemoryFS()
	_, err := New(Options{FS: fs}).Generate(doc)

	var missing *tree.MissingFieldError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, "name", missing.Field)
	assert.Equal(t, "pages[1].contents[0]", missing.Path)
	assert.Empty(t, fs.Files())
}

func TestGenerate_StrictRejectsMalformedStyles(t *testing.T) {
	_, err := New(Options{Strict: true, FS: NewMemoryFS()}).Generate(sampleDocument())

	var malformed *tree.MalformedStyleError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Equal(t, "invalid", malformed.Rule)
}

func TestGenerate_DuplicateRoutes(t *testing.T) {
	doc := &tree.Document{Pages: []tree.PageNode{{Label: "Home"}, {Label: "home"}, {Label: "HOME"}}}

	report, err := New(Options{FS: NewMemoryFS()}).Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"/home"}, report.DuplicateRoutes)
	assert.Equal(t, 3, report.Pages)
}

type failingFS struct {
	*MemoryFS
	failOn string
}

func (f *failingFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if filepath.Base(path) == f.failOn {
		return errors.New("disk full")
	}
	return f.MemoryFS.WriteFile(path, data, perm)
}

func TestGenerate_IOErrorAborts(t *testing.T) {
	fs := &failingFS{MemoryFS: NewMemoryFS(), failOn: "Home.jsx"}
	report, err := New(Options{OutputRoot: "out", FS: fs}).Generate(sampleDocument())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
	assert.Contains(t, err.Error(), "disk full")

	// Files written before the failure stay in place; nothing after it is written
	assert.Contains(t, fs.Files(), filepath.Join("out", "components", "Card.jsx"))
	assert.NotContains(t, fs.Files(), filepath.Join("out", "App.jsx"))
	assert.Len(t, report.Files, 2)
}
