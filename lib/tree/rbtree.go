package tree

import (
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/iterator"

	"go.uber.org/multierr"
)

type rbNode[K any, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
	hasKV  bool
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) HasKeyVal() bool {
	if node == nil {
		return false
	}
	return node.hasKV
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) isNilLeaf() bool {
	return isNilLeaf[K, V](node)
}

func (node *rbNode[K, V]) isRed() bool {
	return isRed[K, V](node)
}

func (node *rbNode[K, V]) isBlack() bool {
	return isBlack[K, V](node)
}

func (node *rbNode[K, V]) isRoot() bool {
	return isRoot[K, V](node)
}

func (node *rbNode[K, V]) isLeaf() bool {
	return node != nil && node.parent != nil && node.left.isNilLeaf() && node.right.isNilLeaf()
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K, V]) pred() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	aux := x
	if aux.left != nil {
		return aux.left.maximum()
	}

	aux = x.parent
	// Backtrack to father node that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}

	aux := x
	if aux.right != nil {
		return aux.right.minimum()
	}

	aux = x.parent
	// Backtrack to father node that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

type treeMapEntry[K any, V any] struct {
	key K
	val V
}

func (e *treeMapEntry[K, V]) Key() K { return e.key }
func (e *treeMapEntry[K, V]) Val() V { return e.val }

var _ TreeMap[uint8, struct{}] = (*treeMap[uint8, struct{}])(nil) // Type check assertion

type treeMap[K any, V any] struct {
	root           *rbNode[K, V]
	kcmp           infra.Comparator[K]
	keyReleaser    infra.Releaser[K]
	count          int64
	isRmBorrowSucc bool
}

// NewTreeMap creates an empty ordered map over the total order of kcmp.
// The comparator must stay stable for the whole map lifetime.
func NewTreeMap[K any, V any](kcmp infra.Comparator[K], opts ...TreeMapOpt[K, V]) TreeMap[K, V] {
	if kcmp == nil {
		panic("[tree-map] nil key comparator")
	}
	tm := &treeMap[K, V]{
		kcmp: kcmp,
	}
	for _, o := range opts {
		o(tm)
	}
	return tm
}

func (tm *treeMap[K, V]) Len() int64 {
	return atomic.LoadInt64(&tm.count)
}

func (tm *treeMap[K, V]) Root() RBNode[K, V] {
	return tm.root
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. (Optional) The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tm *treeMap[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tm.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tm *treeMap[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tm.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] unknown node direction to right-rotate")
	}
	y.parent = p
}

// i1: Empty tree, insert directly, but root node is painted to black.
// A value replacement of a comparator equal key touches no structure,
// hence no rebalance for that path.
func (tm *treeMap[K, V]) Put(key K, val V, ifNotPresent ...bool) (prev V, replaced bool, err error) {
	if len(ifNotPresent) <= 0 {
		ifNotPresent = []bool{false}
	}

	if /* i1 */ tm.root.isNilLeaf() {
		tm.root = &rbNode[K, V]{
			key:   key,
			val:   val,
			hasKV: true,
		}
		atomic.AddInt64(&tm.count, 1)
		return prev, false, nil
	}

	var x, y *rbNode[K, V] = tm.root, nil
	for !x.isNilLeaf() {
		y = x
		res := tm.kcmp(key, x.key)
		if /* equal */ res == 0 {
			break
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	if y.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[tree-map] insert a new value into nil node")
	}

	var z *rbNode[K, V]
	res := tm.kcmp(key, y.key)
	if /* equal */ res == 0 {
		if /* disabled */ ifNotPresent[0] {
			return prev, false, ErrTreeMapDisabledValReplace
		}
		prev, y.val = y.val, val
		return prev, true, nil
	} else /* less */ if res < 0 {
		z = &rbNode[K, V]{
			key:    key,
			val:    val,
			color:  Red,
			parent: y,
			hasKV:  true,
		}
		y.left = z
	} else /* greater */ {
		z = &rbNode[K, V]{
			key:    key,
			val:    val,
			color:  Red,
			parent: y,
			hasKV:  true,
		}
		y.right = z
	}

	atomic.AddInt64(&tm.count, 1)
	tm.insertRebalance(z)
	return prev, false, nil
}

// New node X is red by default.
//
// im1: X's parent P is black and P is root, nothing to fix.
// im2: X's parent P is red and P is root, repaint P into black.
// im3: Both the parent P and the uncle U are red, grandpa G is black
// (red-violation). Repaint P and U black, G red, then recurse on G,
// the repaint may ripple a red-violation upwards.
// im4: P red, U black, X and P sit in opposite directions. Rotate P to
// the opposite direction so X lines up with P, then fall into im5.
// im5: P red, U black, X and P in the same direction. Rotate G to the
// opposite direction, repaint P black and the new sibling red.
func (tm *treeMap[K, V]) insertRebalance(x *rbNode[K, V]) {
	for !x.isNilLeaf() {
		if x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if x.parent.isBlack() {
			return
		}

		if x.parent.isRoot() {
			if /* im1 */ x.parent.isBlack() {
				return
			} else /* im2 */ {
				x.parent.color = Black
			}
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		} else {
			if !x.hasUncle() || x.uncle().isBlack() {
				dir := x.Direction()
				if /* im4 */ dir != x.parent.Direction() {
					p := x.parent
					switch dir {
					case Left:
						tm.rightRotate(p)
					case Right:
						tm.leftRotate(p)
					default:
						// impossible run to here
						panic( /* debug assertion */ "[tree-map] insert rebalance violate (im4)")
					}
					x = p // enter im5 to fix
				}

				switch /* im5 */ dir = x.parent.Direction(); dir {
				case Left:
					tm.rightRotate(x.grandpa())
				case Right:
					tm.leftRotate(x.grandpa())
				default:
					// impossible run to here
					panic( /* debug assertion */ "[tree-map] insert rebalance violate (im5)")
				}

				x.parent.color = Black
				x.sibling().color = Red
				return
			}
		}
	}
}

// r1: Only a root node, remove directly.
// r2: X owns both children. Find X's pred or succ (both at most one
// child), swap the key and value payloads into X and remove that node
// instead, entering r3 or r4.
// r3: X is a leaf. A red leaf detaches directly, a black leaf leaves a
// black-violation behind and needs removeRebalance before unlink.
// r4: X holds exactly one child. That child must be red (p4), splice
// it into X's place; if X was black repaint the child black or
// rebalance.
func (tm *treeMap[K, V]) removeNode(z *rbNode[K, V]) *treeMapEntry[K, V] {
	if /* r1 */ atomic.LoadInt64(&tm.count) == 1 && z.isRoot() {
		tm.root = nil
		z.left = nil
		z.right = nil
		return &treeMapEntry[K, V]{key: z.key, val: z.val}
	}

	res := &treeMapEntry[K, V]{key: z.key, val: z.val}

	y := z
	if /* r2 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		if tm.isRmBorrowSucc {
			y = z.succ() // enter r3-r4
		} else {
			y = z.pred() // enter r3-r4
		}
		// Swap key & value.
		z.key, z.val = y.key, y.val
		z.hasKV = true
	}

	if /* r3 */ y.isLeaf() {
		if /* r3 (1) */ y.isRed() {
			switch dir := y.Direction(); dir {
			case Left:
				y.parent.left = nil
			case Right:
				y.parent.right = nil
			default:
				// impossible run to here
				panic( /* debug assertion */ "[tree-map] y should be a leaf node, violate (r3-1)")
			}
			return res
		} else /* r3 (2) */ {
			tm.removeRebalance(y)
		}
	} else /* r4 */ {
		var replace *rbNode[K, V]
		if !y.right.isNilLeaf() {
			replace = y.right
		} else if !y.left.isNilLeaf() {
			replace = y.left
		}

		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[tree-map] remove a leaf node without child, violate (r4)")
		}

		switch dir := y.Direction(); dir {
		case Root:
			tm.root = replace
			tm.root.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[tree-map] remove rebalance impossible run to here")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = Black
			} else {
				tm.removeRebalance(replace)
			}
		}
	}

	// Unlink node
	if !y.isRoot() && y == y.parent.left {
		y.parent.left = nil
	} else if !y.isRoot() && y == y.parent.right {
		y.parent.right = nil
	}
	y.parent = nil
	y.left = nil
	y.right = nil
	y.hasKV = false

	return res
}

func (tm *treeMap[K, V]) Remove(key K) (prev V, err error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return prev, ErrTreeMapIsEmpty
	}
	z := tm.search(func(node *rbNode[K, V]) int64 {
		return tm.kcmp(key, node.key)
	})
	if z == nil {
		return prev, ErrTreeMapNotFound
	}
	defer func() {
		atomic.AddInt64(&tm.count, -1)
	}()

	e := tm.removeNode(z)
	if tm.keyReleaser != nil {
		return e.val, tm.keyReleaser(e.key)
	}
	return e.val, nil
}

func (tm *treeMap[K, V]) PollFirst() (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	_min := tm.root.minimum()
	if _min.isNilLeaf() {
		return nil, ErrTreeMapIsEmpty
	}
	defer func() {
		atomic.AddInt64(&tm.count, -1)
	}()
	return tm.removeNode(_min), nil
}

func (tm *treeMap[K, V]) PollLast() (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	_max := tm.root.maximum()
	if _max.isNilLeaf() {
		return nil, ErrTreeMapIsEmpty
	}
	defer func() {
		atomic.AddInt64(&tm.count, -1)
	}()
	return tm.removeNode(_max), nil
}

// rm1: X's sibling S is red, so P, Sc and Sd must be black. Rotate P
// towards X, repaint S black and P red, then continue with the new
// black sibling.
// rm2: P red, S/Sc/Sd black. Repaint S red and P black, done.
// rm3: P, S, Sc and Sd all black. Repaint S red to fix p4 locally and
// recurse on P.
// rm4: S black, the near nephew Sc red, Sd black. Rotate S away from
// X, repaint Sc black and S red, enter rm5.
// rm5: S black, the far nephew Sd red. Rotate P towards X, S takes
// P's color, P and Sd turn black. (Sc is the nephew on X's side, Sd
// the opposite one.)
func (tm *treeMap[K, V]) removeRebalance(x *rbNode[K, V]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tm.leftRotate(x.parent)
			case Right:
				tm.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[tree-map] remove rebalance violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K, V]
		switch /* rm2 */ dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[tree-map] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				break
			} else /* rm3 */ {
				sibling.color = Red
				x = x.parent
				continue
			}
		} else {
			if /* rm4 */ !sc.isNilLeaf() && sc.isRed() {
				switch dir {
				case Left:
					tm.rightRotate(sibling)
				case Right:
					tm.leftRotate(sibling)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[tree-map] remove rebalance violate (rm4)")
				}
				sc.color = Black
				sibling.color = Red
				sibling = x.sibling()
				switch dir {
				case Left:
					sd = sibling.right
				case Right:
					sd = sibling.left
				default:
					// impossible run to here
					panic( /* debug assertion */ "[tree-map] remove rebalance violate (rm4)")
				}
			}

			switch /* rm5 */ dir {
			case Left:
				tm.leftRotate(x.parent)
			case Right:
				tm.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[tree-map] remove rebalance violate (rm5)")
			}
			sibling.color = x.parent.color
			x.parent.color = Black
			if !sd.isNilLeaf() {
				sd.color = Black
			}
			break
		}
	}
}

func (tm *treeMap[K, V]) search(fn func(*rbNode[K, V]) int64) *rbNode[K, V] {
	for aux := tm.root; aux != nil; {
		res := fn(aux)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil
}

func (tm *treeMap[K, V]) Get(key K) (val V, err error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return val, ErrTreeMapIsEmpty
	}
	z := tm.search(func(node *rbNode[K, V]) int64 {
		return tm.kcmp(key, node.key)
	})
	if z == nil {
		return val, ErrTreeMapNotFound
	}
	return z.val, nil
}

func (tm *treeMap[K, V]) ContainsKey(key K) bool {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return false
	}
	return tm.search(func(node *rbNode[K, V]) int64 {
		return tm.kcmp(key, node.key)
	}) != nil
}

func (tm *treeMap[K, V]) First() (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	_min := tm.root.minimum()
	return &treeMapEntry[K, V]{key: _min.key, val: _min.val}, nil
}

func (tm *treeMap[K, V]) Last() (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	_max := tm.root.maximum()
	return &treeMapEntry[K, V]{key: _max.key, val: _max.val}, nil
}

func (tm *treeMap[K, V]) FirstKey() (key K, err error) {
	e, err := tm.First()
	if err != nil {
		return key, err
	}
	return e.Key(), nil
}

func (tm *treeMap[K, V]) LastKey() (key K, err error) {
	e, err := tm.Last()
	if err != nil {
		return key, err
	}
	return e.Key(), nil
}

// A single root-to-leaf descent. Each step either terminates on a
// comparator equal key or narrows towards it, remembering the best
// candidate seen on the qualifying side.
func (tm *treeMap[K, V]) Floor(key K) (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	var candidate *rbNode[K, V]
	for aux := tm.root; !aux.isNilLeaf(); {
		res := tm.kcmp(key, aux.key)
		if res == 0 {
			return &treeMapEntry[K, V]{key: aux.key, val: aux.val}, nil
		} else if res < 0 {
			aux = aux.left
		} else {
			candidate = aux
			aux = aux.right
		}
	}
	if candidate == nil {
		return nil, ErrTreeMapNotFound
	}
	return &treeMapEntry[K, V]{key: candidate.key, val: candidate.val}, nil
}

func (tm *treeMap[K, V]) Ceiling(key K) (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	var candidate *rbNode[K, V]
	for aux := tm.root; !aux.isNilLeaf(); {
		res := tm.kcmp(key, aux.key)
		if res == 0 {
			return &treeMapEntry[K, V]{key: aux.key, val: aux.val}, nil
		} else if res > 0 {
			aux = aux.right
		} else {
			candidate = aux
			aux = aux.left
		}
	}
	if candidate == nil {
		return nil, ErrTreeMapNotFound
	}
	return &treeMapEntry[K, V]{key: candidate.key, val: candidate.val}, nil
}

func (tm *treeMap[K, V]) Lower(key K) (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	var candidate *rbNode[K, V]
	for aux := tm.root; !aux.isNilLeaf(); {
		if tm.kcmp(key, aux.key) <= 0 {
			aux = aux.left
		} else {
			candidate = aux
			aux = aux.right
		}
	}
	if candidate == nil {
		return nil, ErrTreeMapNotFound
	}
	return &treeMapEntry[K, V]{key: candidate.key, val: candidate.val}, nil
}

func (tm *treeMap[K, V]) Higher(key K) (TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	var candidate *rbNode[K, V]
	for aux := tm.root; !aux.isNilLeaf(); {
		if tm.kcmp(key, aux.key) >= 0 {
			aux = aux.right
		} else {
			candidate = aux
			aux = aux.left
		}
	}
	if candidate == nil {
		return nil, ErrTreeMapNotFound
	}
	return &treeMapEntry[K, V]{key: candidate.key, val: candidate.val}, nil
}

// Inorder traversal to implement the DFS.
func (tm *treeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	size := atomic.LoadInt64(&tm.count)
	aux := tm.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tm *treeMap[K, V]) Keys() ([]K, error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	keys := make([]K, 0, tm.Len())
	tm.Foreach(func(idx int64, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (tm *treeMap[K, V]) Entries() ([]TreeMapEntry[K, V], error) {
	if atomic.LoadInt64(&tm.count) <= 0 {
		return nil, ErrTreeMapIsEmpty
	}
	entries := make([]TreeMapEntry[K, V], 0, tm.Len())
	tm.Foreach(func(idx int64, key K, val V) bool {
		entries = append(entries, &treeMapEntry[K, V]{key: key, val: val})
		return true
	})
	return entries, nil
}

func (tm *treeMap[K, V]) Iter() iterator.Iterator[TreeMapEntry[K, V]] {
	entries, err := tm.Entries()
	if err != nil {
		return iterator.NewSnapshot[TreeMapEntry[K, V]](nil)
	}
	return iterator.NewSnapshot(entries)
}

// Clear tears down all nodes iteratively. The key releaser takes over
// each stored key, release failures are combined and reported after
// the teardown completes. Values stay untouched.
func (tm *treeMap[K, V]) Clear() error {
	size := atomic.LoadInt64(&tm.count)
	aux := tm.root
	tm.root = nil
	if size < 0 || aux == nil {
		return nil
	}

	var merr error
	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		if tm.keyReleaser != nil {
			merr = multierr.Append(merr, tm.keyReleaser(aux.key))
		}
		aux.right, aux.parent, aux.left = nil, nil, nil
		aux.hasKV = false
		atomic.AddInt64(&tm.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
	return merr
}

func (tm *treeMap[K, V]) Release() error {
	err := tm.Clear()
	tm.keyReleaser = nil
	return err
}
