package core

import "iter"

// ScalarList 单链表，保存同一实体内某个可重复组码出现过的全部标量值。
// 追加顺序就是标签到达顺序，这个顺序是有语义的：多个可重复组码之间按
// 下标位置一一对应（例如 LTYPE 的第 i 个虚线长度对应第 i 个复杂元素标志），
// 这是 DXF 格式本身的约定，解码和编码都必须原样保持。
//
// 每个节点独占地拥有后继节点：整条链从头到尾统一释放，带着后继的节点
// 不允许单独释放（必须先 Detach 脱链）。
type ScalarList[T any] struct {
	head, tail *ScalarNode[T]
	size       int
}

type ScalarNode[T any] struct {
	Value T
	next  *ScalarNode[T]
}

// Next 返回后继节点，链尾为 nil
func (n *ScalarNode[T]) Next() *ScalarNode[T] {
	return n.next
}

// Detach 摘下并返回后继节点，调用后本节点可以安全释放
func (n *ScalarNode[T]) Detach() *ScalarNode[T] {
	next := n.next
	n.next = nil
	return next
}

// Free 释放单个节点。后继非空时拒绝（返回 ErrChainedNode），
// 绝不偷偷帮调用方脱链。
func (n *ScalarNode[T]) Free() error {
	if n.next != nil {
		return ErrChainedNode
	}
	var zero T
	n.Value = zero
	return nil
}

// Append 追加一个值，保持到达顺序
func (l *ScalarList[T]) Append(value T) {
	node := &ScalarNode[T]{Value: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

func (l *ScalarList[T]) Len() int {
	return l.size
}

func (l *ScalarList[T]) Empty() bool {
	return l.size == 0
}

// Head 返回首节点，空链表为 nil
func (l *ScalarList[T]) Head() *ScalarNode[T] {
	return l.head
}

// All 从头到尾惰性遍历，可重复调用（遍历不破坏链表）
func (l *ScalarList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values 拷贝出一个切片快照
func (l *ScalarList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Free 从头到尾迭代释放整条链（不递归，几千个节点的长链也不会爆栈）。
// 每一步先脱链再释放单节点，所以单节点的 Free 约束始终满足。
func (l *ScalarList[T]) Free() {
	for n := l.head; n != nil; {
		next := n.Detach()
		_ = n.Free()
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// RecordList 单链表，保存同一种类的整条记录（例如一张图里全部 DICTIONARY）。
// 所有权和顺序约定与 ScalarList 相同：链表独占成员记录及其子链表，
// 解码按到达顺序追加，编码按链表顺序输出。
type RecordList[R any] struct {
	head, tail *RecordNode[R]
	size       int
}

type RecordNode[R any] struct {
	Record R
	next   *RecordNode[R]
}

func (n *RecordNode[R]) Next() *RecordNode[R] {
	return n.next
}

// Detach 摘下并返回后继节点
func (n *RecordNode[R]) Detach() *RecordNode[R] {
	next := n.next
	n.next = nil
	return next
}

// Free 释放单个节点，后继非空时拒绝
func (n *RecordNode[R]) Free() error {
	if n.next != nil {
		return ErrChainedNode
	}
	var zero R
	n.Record = zero
	return nil
}

// Append 追加一条记录，记录的所有权随之移交给链表
func (l *RecordList[R]) Append(record R) {
	node := &RecordNode[R]{Record: record}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

func (l *RecordList[R]) Len() int {
	return l.size
}

func (l *RecordList[R]) Empty() bool {
	return l.size == 0
}

func (l *RecordList[R]) Head() *RecordNode[R] {
	return l.head
}

// All 从头到尾惰性遍历，可重复调用
func (l *RecordList[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Record) {
				return
			}
		}
	}
}

// Records 拷贝出一个切片快照
func (l *RecordList[R]) Records() []R {
	records := make([]R, 0, l.size)
	for r := range l.All() {
		records = append(records, r)
	}
	return records
}

// Free 从头到尾迭代释放整条链
func (l *RecordList[R]) Free() {
	for n := l.head; n != nil; {
		next := n.Detach()
		_ = n.Free()
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}
