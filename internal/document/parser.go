package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses one document.
func ParseFile(path string) (*Document, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(content, path)
}

// Parse decodes document content and records the position of every rule,
// declaration and measure.
func Parse(content []byte, path string) (*Document, error) {
	doc := &Document{Path: path}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		// Empty file
		return doc, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document must be a mapping", top.Line)
	}
	if err := top.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Path = path

	rules := mapValue(top, "rules")
	if rules == nil || rules.Kind != yaml.SequenceNode {
		return doc, nil
	}
	for i, ruleNode := range rules.Content {
		if i >= len(doc.Rules) {
			break
		}
		rule := &doc.Rules[i]
		rule.Pos = position(ruleNode)

		if decls := mapValue(ruleNode, "declarations"); decls != nil {
			for j, n := range decls.Content {
				if j < len(rule.Declarations) {
					rule.Declarations[j].Pos = position(n)
				}
			}
		}
		if measures := mapValue(ruleNode, "measures"); measures != nil {
			for j, n := range measures.Content {
				if j < len(rule.Measures) {
					rule.Measures[j].Pos = position(n)
				}
			}
		}
	}

	return doc, nil
}

// mapValue returns the value node stored under key in a mapping node.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func position(n *yaml.Node) Position {
	return Position{Line: n.Line, Column: n.Column}
}
