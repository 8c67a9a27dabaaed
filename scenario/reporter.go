// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avltree/scenario Reporter

// Reporter - receives the outcome of each scenario step
type Reporter interface {
	Inserted(key int, err error)
	Removed(key int, removed bool)
	Searched(key int, node *avl.Node)
	Neighbours(key int, predecessor *avl.Node, successor *avl.Node)
	Tree(title string, tree *avl.Tree)
}

// text output, one line per step
type consoleReporter struct {
	w       io.Writer
	details bool
}

// NewConsoleReporter - plain text reporter; details adds height and
// balance to each printed node
func NewConsoleReporter(w io.Writer, details bool) Reporter {
	return &consoleReporter{
		w:       w,
		details: details,
	}
}

func (c *consoleReporter) Inserted(key int, err error) {
	if nil != err {
		fmt.Fprintf(c.w, "insert: %d  error: %s\n", key, err)
		return
	}
	fmt.Fprintf(c.w, "insert: %d\n", key)
}

func (c *consoleReporter) Removed(key int, removed bool) {
	if !removed {
		fmt.Fprintf(c.w, "remove: %d  not present\n", key)
		return
	}
	fmt.Fprintf(c.w, "remove: %d\n", key)
}

func (c *consoleReporter) Searched(key int, node *avl.Node) {
	if nil == node {
		fmt.Fprintf(c.w, "search: %d  not found\n", key)
		return
	}
	fmt.Fprintf(c.w, "search: %d  found\n", key)
}

func (c *consoleReporter) Neighbours(key int, predecessor *avl.Node, successor *avl.Node) {
	fmt.Fprintf(c.w, "neighbours of: %d  predecessor: %s  successor: %s\n", key, describe(predecessor), describe(successor))
}

func (c *consoleReporter) Tree(title string, tree *avl.Tree) {
	fmt.Fprintf(c.w, "%s: count: %d  height: %d\n", title, tree.Count(), tree.Height())
	if tree.IsEmpty() {
		fmt.Fprintf(c.w, "(empty)\n")
		return
	}
	tree.Print(c.w, c.details)
}

func describe(node *avl.Node) string {
	k, ok := keyOf(node)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", k)
}

// JSONReporter - collects every outcome into a single JSON document
type JSONReporter struct {
	w      io.Writer
	output jsonOutput
}

type jsonOutput struct {
	Inserted []jsonInsert `json:"inserted"`
	Removed  []jsonRemove `json:"removed"`
	Trees    []jsonTree   `json:"trees,omitempty"`
	Queries  []jsonQuery  `json:"queries"`
}

type jsonInsert struct {
	Key   int    `json:"key"`
	Error string `json:"error,omitempty"`
}

type jsonRemove struct {
	Key     int  `json:"key"`
	Removed bool `json:"removed"`
}

type jsonTree struct {
	Title  string   `json:"title"`
	Count  int      `json:"count"`
	Height int      `json:"height"`
	Lines  []string `json:"lines"`
}

type jsonQuery struct {
	Key         int  `json:"key"`
	Found       bool `json:"found"`
	Predecessor *int `json:"predecessor,omitempty"`
	Successor   *int `json:"successor,omitempty"`
}

// NewJSONReporter - reporter that writes JSON to w on Flush
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		w: w,
		output: jsonOutput{
			Inserted: []jsonInsert{},
			Removed:  []jsonRemove{},
			Queries:  []jsonQuery{},
		},
	}
}

// Inserted - record an insert
func (j *JSONReporter) Inserted(key int, err error) {
	item := jsonInsert{Key: key}
	if nil != err {
		item.Error = err.Error()
	}
	j.output.Inserted = append(j.output.Inserted, item)
}

// Removed - record a removal
func (j *JSONReporter) Removed(key int, removed bool) {
	j.output.Removed = append(j.output.Removed, jsonRemove{Key: key, Removed: removed})
}

// Searched - record a search, neighbours are added to the same entry
func (j *JSONReporter) Searched(key int, node *avl.Node) {
	j.output.Queries = append(j.output.Queries, jsonQuery{Key: key, Found: nil != node})
}

// Neighbours - attach the neighbours to the matching search entry
func (j *JSONReporter) Neighbours(key int, predecessor *avl.Node, successor *avl.Node) {
	n := len(j.output.Queries)
	if 0 == n || j.output.Queries[n-1].Key != key {
		j.output.Queries = append(j.output.Queries, jsonQuery{Key: key, Found: true})
		n += 1
	}
	q := &j.output.Queries[n-1]
	if k, ok := keyOf(predecessor); ok {
		q.Predecessor = &k
	}
	if k, ok := keyOf(successor); ok {
		q.Successor = &k
	}
}

// Tree - record the printed shape of the tree
func (j *JSONReporter) Tree(title string, tree *avl.Tree) {
	buffer := &bytes.Buffer{}
	tree.Print(buffer, false)
	lines := []string{}
	if buffer.Len() > 0 {
		lines = strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	}
	j.output.Trees = append(j.output.Trees, jsonTree{
		Title:  title,
		Count:  tree.Count(),
		Height: tree.Height(),
		Lines:  lines,
	})
}

// Flush - write the collected document
func (j *JSONReporter) Flush() error {
	return PrintJSON(j.w, j.output)
}

// PrintJSON - write message as indented JSON followed by a newline
func PrintJSON(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
