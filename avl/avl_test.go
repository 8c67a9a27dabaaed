// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

type intItem int

// deliberately not normalised to ±1
func (i intItem) Compare(x interface{}) int {
	return int(i) - int(x.(intItem))
}

// in-order key sequence using only the read-only accessors
func inOrder(p *avl.Node, keys []avl.Item) []avl.Item {
	if nil == p {
		return keys
	}
	keys = inOrder(p.Left(), keys)
	keys = append(keys, p.Key())
	return inOrder(p.Right(), keys)
}

func printed(tree *avl.Tree) string {
	buffer := &bytes.Buffer{}
	tree.Print(buffer, true)
	return buffer.String()
}

func checkTree(t *testing.T, tree *avl.Tree) {
	t.Helper()
	if err := tree.Check(); nil != err {
		t.Logf("tree:\n%s", printed(tree))
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// delete a prefix of the items, check, then delete the rest
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.New()
		for _, key := range addList {
			if err := tree.Insert(key); nil != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
			checkTree(t, tree)
		}

		for _, key := range addList[:i] {
			if !tree.Delete(key) {
				t.Fatalf("delete: %q was not found", key)
			}
			checkTree(t, tree)
		}

		if len(addList)-i != tree.Count() {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(addList)-i)
		}

		for _, key := range addList[i:] {
			if !tree.Delete(key) {
				t.Fatalf("delete remainder: %q was not found", key)
			}
			checkTree(t, tree)
		}
		if !tree.IsEmpty() {
			t.Logf("tree:\n%s", printed(tree))
			t.Fatal("remaining nodes")
		}
	}
}

// walk the tree forwards and backwards with the neighbour functions
func doTraverse(t *testing.T, addList []stringItem) {

	tree := avl.New()
	expected := make([]string, 0, len(addList))
	for _, key := range addList {
		if err := tree.Insert(key); nil != err {
			t.Fatalf("insert: %q  error: %s", key, err)
		}
		expected = append(expected, key.String())
	}
	sort.Strings(expected)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		next, err := tree.Successor(p)
		if nil != err {
			t.Fatalf("successor of: %q  error: %s", p.Key(), err)
		}
		p = next
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		prev, err := tree.Predecessor(p)
		if nil != err {
			t.Fatalf("predecessor of: %q  error: %s", p.Key(), err)
		}
		p = prev
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
}

func TestScenario(t *testing.T) {
	var root *avl.Node
	var err error

	for _, k := range []int{19, 8, 13, 78, 10, 1, 11, 9} {
		root, err = avl.Insert(root, intItem(k))
		assert.Nil(t, err, "insert: %d", k)
		assert.Nil(t, avl.Check(root), "after insert: %d", k)
	}

	root = avl.Remove(root, intItem(13))
	assert.Nil(t, avl.Check(root), "after remove")

	assert.Nil(t, avl.Search(root, intItem(13)), "13 still present")
	if n := avl.Search(root, intItem(78)); assert.NotNil(t, n, "78 missing") {
		assert.Equal(t, intItem(78), n.Key())
	}

	v := avl.Search(root, intItem(11))
	if !assert.NotNil(t, v, "11 missing") {
		return
	}
	p, err := avl.Predecessor(root, v)
	assert.Nil(t, err)
	s, err := avl.Successor(root, v)
	assert.Nil(t, err)

	assert.Equal(t, intItem(10), p.Key(), "predecessor")
	assert.Equal(t, intItem(19), s.Key(), "successor")

	keys := inOrder(root, nil)
	assert.Equal(t, []avl.Item{
		intItem(1), intItem(8), intItem(9), intItem(10),
		intItem(11), intItem(19), intItem(78),
	}, keys)
}

func TestInsertRotations(t *testing.T) {
	cases := []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var root *avl.Node
			var err error
			for _, k := range c.keys {
				root, err = avl.Insert(root, intItem(k))
				assert.Nil(t, err)
			}
			assert.Nil(t, avl.Check(root))
			assert.Equal(t, intItem(2), root.Key(), "new root")
			assert.Equal(t, 2, root.Height(), "root height")
			assert.Equal(t, intItem(1), root.Left().Key(), "left")
			assert.Equal(t, intItem(3), root.Right().Key(), "right")
			assert.Equal(t, 0, root.Balance(), "balance")
		})
	}
}

func TestDuplicateLeavesTreeUnchanged(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{50, 20, 80, 10, 30, 70, 90, 25} {
		assert.Nil(t, tree.Insert(intItem(k)))
	}

	before := printed(tree)
	root := tree.Root()
	count := tree.Count()

	for _, k := range []int{50, 25, 90, 10} {
		err := tree.Insert(intItem(k))
		assert.Equal(t, fault.ErrDuplicateKey, err, "key: %d", k)
		assert.True(t, fault.IsErrExists(err))
	}

	assert.Equal(t, before, printed(tree), "shape changed")
	assert.True(t, root == tree.Root(), "root changed")
	assert.Equal(t, count, tree.Count(), "count changed")

	// the function form returns the root it was given
	r, err := avl.Insert(root, intItem(30))
	assert.Equal(t, fault.ErrDuplicateKey, err)
	assert.True(t, root == r, "returned root differs")
}

func TestRemoveCases(t *testing.T) {
	build := func() *avl.Tree {
		tree := avl.New()
		//           40
		//        /      \
		//      20        60
		//     /  \      /  \
		//   10    30  50    70
		//   /                 \
		//  5                   80
		for _, k := range []int{40, 20, 60, 10, 30, 50, 70, 5, 80} {
			assert.Nil(t, tree.Insert(intItem(k)))
		}
		return tree
	}

	cases := []struct {
		name string
		key  int
	}{
		{"leaf", 30},
		{"left child only", 10},
		{"right child only", 70},
		{"two children", 20},
		{"root", 40},
		{"deep leaf", 80},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := build()
			all := inOrder(tree.Root(), nil)

			assert.True(t, tree.Delete(intItem(c.key)), "not removed")
			checkTree(t, tree)
			assert.Nil(t, tree.Search(intItem(c.key)), "still present")
			assert.Equal(t, len(all)-1, tree.Count(), "count")

			for _, k := range all {
				if intItem(c.key) == k {
					continue
				}
				assert.NotNil(t, tree.Search(k), "lost key: %v", k)
			}
		})
	}
}

func TestRemoveAbsent(t *testing.T) {
	tree := avl.New()
	assert.False(t, tree.Delete(intItem(1)), "empty tree")
	assert.Nil(t, avl.Remove(nil, intItem(1)))

	for _, k := range []int{2, 4, 6} {
		assert.Nil(t, tree.Insert(intItem(k)))
	}
	before := printed(tree)

	assert.False(t, tree.Delete(intItem(5)), "absent key removed")
	assert.Equal(t, 3, tree.Count())
	assert.Equal(t, before, printed(tree))
}

func TestSearchEmpty(t *testing.T) {
	assert.Nil(t, avl.Search(nil, intItem(1)))
	tree := avl.New()
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Search(intItem(1)))
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Check())
}

func TestNeighbours(t *testing.T) {
	const n = 200
	keys := rand.New(rand.NewSource(17)).Perm(n)

	tree := avl.New()
	for _, k := range keys {
		// even keys only so gaps exist between neighbours
		assert.Nil(t, tree.Insert(intItem(2*k)))
	}

	for k := 0; k < n; k += 1 {
		node := tree.Search(intItem(2 * k))
		if !assert.NotNil(t, node, "key: %d", 2*k) {
			continue
		}

		p, err := tree.Predecessor(node)
		assert.Nil(t, err)
		if 0 == k {
			assert.Nil(t, p, "minimum has predecessor")
		} else if assert.NotNil(t, p) {
			assert.Equal(t, intItem(2*k-2), p.Key())
		}

		s, err := tree.Successor(node)
		assert.Nil(t, err)
		if n-1 == k {
			assert.Nil(t, s, "maximum has successor")
		} else if assert.NotNil(t, s) {
			assert.Equal(t, intItem(2*k+2), s.Key())
		}
	}
}

func TestNeighboursNotInTree(t *testing.T) {
	tree := avl.New()
	other := avl.New()
	for _, k := range []int{1, 2, 3, 4, 5} {
		assert.Nil(t, tree.Insert(intItem(k)))
		assert.Nil(t, other.Insert(intItem(k)))
	}

	// same key, different node
	stranger := other.Search(intItem(3))

	_, err := tree.Predecessor(stranger)
	assert.Equal(t, fault.ErrNodeNotInTree, err)
	_, err = tree.Successor(stranger)
	assert.Equal(t, fault.ErrNodeNotInTree, err)

	_, err = tree.Predecessor(nil)
	assert.True(t, fault.IsErrNotFound(err))

	assert.Nil(t, other.Insert(intItem(9)))
	_, err = avl.Successor(tree.Root(), other.Search(intItem(9)))
	assert.Equal(t, fault.ErrNodeNotInTree, err, "key beyond the tree")

	_, err = avl.Predecessor(nil, tree.Root())
	assert.Equal(t, fault.ErrNodeNotInTree, err, "empty root")
}

func TestNeighboursOfRemovedNode(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{19, 8, 13, 78, 10, 1, 11, 9} {
		assert.Nil(t, tree.Insert(intItem(k)))
	}

	removed := tree.Search(intItem(13))
	if !assert.NotNil(t, removed, "search") {
		return
	}
	assert.True(t, tree.Delete(intItem(13)), "delete")
	checkTree(t, tree)

	predecessor, err := tree.Predecessor(removed)
	assert.Equal(t, fault.ErrNodeNotInTree, err, "predecessor")
	assert.Nil(t, predecessor)

	successor, err := tree.Successor(removed)
	assert.Equal(t, fault.ErrNodeNotInTree, err, "successor")
	assert.Nil(t, successor)

	// remaining nodes are unaffected
	predecessor, err = tree.Predecessor(tree.Search(intItem(11)))
	assert.Nil(t, err)
	assert.Equal(t, intItem(10), predecessor.Key())
	successor, err = tree.Successor(tree.Search(intItem(11)))
	assert.Nil(t, err)
	assert.Equal(t, intItem(19), successor.Key())
}

// random inserts and deletes against a reference map
func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 2000, 3000)
	randomTree(t, 2, 500, 5000)
	randomTree(t, 3, 5000, 2000)
}

func randomTree(t *testing.T, seed int64, keyRange int, operations int) {
	r := rand.New(rand.NewSource(seed))
	tree := avl.New()
	present := make(map[int]struct{})

	for i := 0; i < operations; i += 1 {
		k := r.Intn(keyRange)
		if 0 == r.Intn(3) {
			_, wanted := present[k]
			if tree.Delete(intItem(k)) != wanted {
				t.Fatalf("delete: %d  expected removed: %v", k, wanted)
			}
			delete(present, k)
		} else {
			err := tree.Insert(intItem(k))
			if _, ok := present[k]; ok {
				if fault.ErrDuplicateKey != err {
					t.Fatalf("insert duplicate: %d  error: %v", k, err)
				}
			} else if nil != err {
				t.Fatalf("insert: %d  error: %s", k, err)
			}
			present[k] = struct{}{}
		}
		checkTree(t, tree)
		if len(present) != tree.Count() {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
		}
	}

	expected := make([]int, 0, len(present))
	for k := range present {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	keys := inOrder(tree.Root(), nil)
	if len(keys) != len(expected) {
		t.Fatalf("in-order length: actual: %d  expected: %d", len(keys), len(expected))
	}
	for i, k := range expected {
		if intItem(k) != keys[i] {
			t.Fatalf("in-order[%d]: actual: %v  expected: %d", i, keys[i], k)
		}
		if nil == tree.Search(intItem(k)) {
			t.Fatalf("search: %d not found", k)
		}
	}
}

func TestStatistics(t *testing.T) {
	before := avl.Stats()

	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		assert.Nil(t, tree.Insert(intItem(k)))
	}
	mid := avl.Stats()
	assert.Equal(t, uint64(3), mid.Created-before.Created, "created")
	assert.Equal(t, uint64(1), mid.Rotations-before.Rotations, "rotations")

	// duplicate creates nothing
	assert.NotNil(t, tree.Insert(intItem(2)))
	assert.Equal(t, mid.Created, avl.Stats().Created)

	for _, k := range []int{2, 1, 3} {
		assert.True(t, tree.Delete(intItem(k)))
	}
	after := avl.Stats()
	assert.Equal(t, uint64(3), after.Released-before.Released, "released")
	assert.Equal(t, before.Live(), after.Live(), "live nodes")
}
