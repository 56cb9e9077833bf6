package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 追加 [a,b,c] 再遍历，得到的就是 [a,b,c]，顺序是语义的一部分
func TestScalarList_Order(t *testing.T) {
	var list ScalarList[string]
	list.Append("a")
	list.Append("b")
	list.Append("c")

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, []string{"a", "b", "c"}, list.Values())
}

// 遍历可以重复发起，遍历不破坏链表
func TestScalarList_RestartableIteration(t *testing.T) {
	var list ScalarList[float64]
	list.Append(0.5)
	list.Append(-0.25)

	for i := 0; i < 3; i++ {
		assert.Equal(t, []float64{0.5, -0.25}, list.Values())
	}

	// 中途退出也不影响下一次遍历
	for range list.All() {
		break
	}
	assert.Equal(t, 2, list.Len())
}

// 带着后继的节点不允许单独释放，必须先脱链——不偷偷帮调用方修复
func TestScalarList_FreeChainedNode(t *testing.T) {
	var list ScalarList[int]
	list.Append(1)
	list.Append(2)

	head := list.Head()
	require.NotNil(t, head)
	assert.ErrorIs(t, head.Free(), ErrChainedNode)

	// 脱链之后可以释放
	next := head.Detach()
	assert.NoError(t, head.Free())
	require.NotNil(t, next)
	assert.NoError(t, next.Free())
}

// 整链释放从头到尾迭代进行，长链不会爆栈
func TestScalarList_FreeLongChain(t *testing.T) {
	var list ScalarList[int]
	for i := 0; i < 100000; i++ {
		list.Append(i)
	}

	list.Free()
	assert.Equal(t, 0, list.Len())
	assert.Nil(t, list.Head())

	// 释放后还能继续用
	list.Append(7)
	assert.Equal(t, []int{7}, list.Values())
}

func TestRecordList_Order(t *testing.T) {
	type rec struct{ name string }

	var list RecordList[*rec]
	list.Append(&rec{"first"})
	list.Append(&rec{"second"})

	var names []string
	for r := range list.All() {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{"first", "second"}, names)
}

func TestRecordList_OwnershipGuard(t *testing.T) {
	var list RecordList[int]
	list.Append(1)
	list.Append(2)

	assert.ErrorIs(t, list.Head().Free(), ErrChainedNode)

	list.Free()
	assert.True(t, list.Empty())
}
