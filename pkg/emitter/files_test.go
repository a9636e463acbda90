package emitter

import (
	"strings"
	"testing"
)

func TestComponentFile(t *testing.T) {
	markup := "<div classname=\"Card\">\n  <p />\n</div>"

	t.Run("external styles", func(t *testing.T) {
		got := ComponentFile("Card", markup, false)
		want := strings.Join([]string{
			"import './Card.css';",
			"",
			"export default function Card() {",
			" return (",
			"    <div classname=\"Card\">",
			"      <p />",
			"    </div>",
			" );",
			"}",
		}, "\n")
		if got != want {
			t.Errorf("ComponentFile() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("inline styles", func(t *testing.T) {
		got := ComponentFile("Card", "<div />", true)
		want := "export default function Card() {\n return (\n    <div />\n );\n}"
		if got != want {
			t.Errorf("ComponentFile() = %q, want %q", got, want)
		}
	})
}

func TestPageFile(t *testing.T) {
	got := PageFile("Home", []string{"Hero", "Footer"})
	want := strings.Join([]string{
		"import Hero from '../components/Hero';",
		"import Footer from '../components/Footer';",
		"",
		"export default function Home() {",
		" return (",
		"  <div>",
		"      <Hero />",
		"      <Footer />",
		"  </div>",
		" );",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("PageFile() =\n%s\nwant\n%s", got, want)
	}
}

func TestPageFile_Empty(t *testing.T) {
	got := PageFile("Blank", nil)
	want := "\nexport default function Blank() {\n return (\n  <div>\n\n  </div>\n );\n}"
	if got != want {
		t.Errorf("PageFile() = %q, want %q", got, want)
	}
}

func TestAppFile(t *testing.T) {
	got, err := AppFile([]string{"Home", "About"})
	if err != nil {
		t.Fatalf("AppFile() failed: %v", err)
	}
	want := `import {
  BrowserRouter as Router,
  Route,
  Routes,
} from 'react-router-dom';
import Home from './pages/Home';
import About from './pages/About';

export default function App() {
  return (
    <Router>
      <Routes>
        <Route path="/home" element={<Home />} />
        <Route path="/about" element={<About />} />
      </Routes>
    </Router>
  );
}`
	if got != want {
		t.Errorf("AppFile() =\n%s\nwant\n%s", got, want)
	}
}

func TestAppFile_NoPages(t *testing.T) {
	got, err := AppFile(nil)
	if err != nil {
		t.Fatalf("AppFile() failed: %v", err)
	}
	want := `import {
  BrowserRouter as Router,
  Route,
  Routes,
} from 'react-router-dom';

export default function App() {
  return (
    <Router>
      <Routes>

      </Routes>
    </Router>
  );
}`
	if got != want {
		t.Errorf("AppFile() =\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(got, "<Route ") {
		t.Error("no route declarations expected")
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes([]string{"Home", "AboutUs"})
	if len(routes) != 2 {
		t.Fatalf("got %d routes", len(routes))
	}
	if routes[0].Path != "/home" || routes[1].Path != "/aboutus" {
		t.Errorf("unexpected paths: %+v", routes)
	}
}
