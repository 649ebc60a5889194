// Command pagesinject post-processes generated documentation pages: it
// injects the MathJax/Mermaid runtime into each HTML head exactly once and
// rewrites placeholder asset links to their published URLs. It is independent
// tooling with no dependency on the integral engine.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

const runtimeMarker = " fockmap-pages-runtime "

// Placeholder asset links left in the generated pages, mapped to the URLs
// they are published under.
var assetLinks = map[string]string{
	"__FOCKMAP_MATHJAX__": "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js",
	"__FOCKMAP_MERMAID__": "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js",
	"__FOCKMAP_CSS__":     "assets/fockmap.css",
}

const mathjaxConfig = `
      window.MathJax = {
        tex: {
          inlineMath: [['$', '$'], ['\\(', '\\)']],
          displayMath: [['$$', '$$'], ['\\[', '\\]']],
          processEscapes: true
        }
      };
`

const mermaidInit = `
      document.addEventListener('DOMContentLoaded', function () {
        if (window.mermaid) {
          mermaid.initialize({ startOnLoad: false, securityLevel: 'loose' });
          var blocks = document.querySelectorAll('pre > code.language-mermaid');
          blocks.forEach(function (code, index) {
            var pre = code.parentElement;
            if (!pre) return;
            var source = code.textContent || '';
            var container = document.createElement('div');
            container.className = 'mermaid';
            container.id = 'mermaid-diagram-' + index;
            container.textContent = source;
            pre.replaceWith(container);
          });
          mermaid.run();
        }
      });
`

var docsDir = flag.String("docs", "docs-output", "directory of generated HTML pages")

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func hasMarker(doc *html.Node) bool {
	return findNode(doc, func(n *html.Node) bool {
		return n.Type == html.CommentNode && strings.Contains(n.Data, strings.TrimSpace(runtimeMarker))
	}) != nil
}

func scriptNode(text string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "script", Attr: attrs}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

// injectRuntime appends the runtime snippet to the document head. Returns
// false when the page has no head or already carries the marker.
func injectRuntime(doc *html.Node) bool {
	if hasMarker(doc) {
		return false
	}
	head := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "head"
	})
	if head == nil {
		return false
	}

	head.AppendChild(&html.Node{Type: html.CommentNode, Data: runtimeMarker})
	head.AppendChild(scriptNode(mathjaxConfig))
	head.AppendChild(scriptNode("",
		html.Attribute{Key: "defer"},
		html.Attribute{Key: "src", Val: assetLinks["__FOCKMAP_MATHJAX__"]}))
	head.AppendChild(scriptNode("",
		html.Attribute{Key: "defer"},
		html.Attribute{Key: "src", Val: assetLinks["__FOCKMAP_MERMAID__"]}))
	head.AppendChild(scriptNode(mermaidInit))
	return true
}

// rewriteAssets replaces placeholder values in src and href attributes
// throughout the document. Returns the number of rewritten attributes.
func rewriteAssets(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode {
		for i, a := range n.Attr {
			if a.Key != "src" && a.Key != "href" {
				continue
			}
			if target, ok := assetLinks[a.Val]; ok {
				n.Attr[i].Val = target
				count++
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += rewriteAssets(c)
	}
	return count
}

// processPage rewrites one HTML file in place. Returns whether it changed.
func processPage(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	changed := injectRuntime(doc)
	if rewriteAssets(doc) > 0 {
		changed = true
	}
	if !changed {
		return false, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return false, fmt.Errorf("render %s: %w", path, err)
	}
	return true, os.WriteFile(path, buf.Bytes(), 0644)
}

func run(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		return 0, fmt.Errorf("%s directory not found", dir)
	}
	changed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		ok, err := processPage(path)
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
		return nil
	})
	return changed, err
}

func main() {
	flag.Parse()
	changed, err := run(*docsDir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Injected runtime into %d HTML files\n", changed)
}
