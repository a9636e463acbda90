package tree

// DefaultMaxDepth bounds component nesting when no limit is configured
const DefaultMaxDepth = 256

// Check walks the document and returns the first required-field or depth
// violation, in document order. It does not look at style rules.
func Check(doc *Document, maxDepth int) error {
	if doc == nil {
		return nil
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	for i := range doc.Pages {
		page := &doc.Pages[i]
		pagePath := PagePath(i)
		if page.Label == "" {
			return &MissingFieldError{Field: "label", Path: pagePath}
		}

		for j := range page.Contents {
			node := &page.Contents[j]
			path := ContentPath(pagePath, j)
			if node.Name == "" {
				return &MissingFieldError{Field: "name", Path: path}
			}
			if err := checkNode(node, path, 1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkNode(node *ComponentNode, path string, depth, maxDepth int) error {
	if depth > maxDepth {
		return &DepthLimitError{Limit: maxDepth, Path: path}
	}
	if node.Type == "" {
		return &MissingFieldError{Field: "type", Path: path}
	}
	for i := range node.Children {
		if err := checkNode(&node.Children[i], ChildPath(path, i), depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
