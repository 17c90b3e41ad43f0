package flow

import (
	"testing"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTargets() budget.Targets {
	return budget.TargetsFromConfig(config.Budget{NeedsPercent: 50, WantsPercent: 30, SavingsPercent: 20})
}

func TestBuildFlowNoIncomeYieldsNilGraph(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(90000), Type: transaction.Expense, Category: transaction.Needs},
	}
	assert.Nil(t, BuildFlow(txs, defaultTargets()))
	assert.Nil(t, BuildFlow(nil, defaultTargets()))
}

func TestBuildFlowThreeTiers(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(100000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(40000), Type: transaction.Expense, Category: transaction.Needs},
		{Date: "2025-03-10", Label: "Dining", Amount: money.FromCents(20000), Type: transaction.Expense, Category: transaction.Wants},
		{Date: "2025-03-15", Label: "ETF", Amount: money.FromCents(10000), Type: transaction.Expense, Category: transaction.Savings},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	// Tier-1 edges in the fixed category order, then the remainder
	assert.Equal(t, Edge{From: "Income", To: "Needs (50%)", Amount: money.FromCents(40000)}, graph.Edges[0])
	assert.Equal(t, Edge{From: "Income", To: "Wants (30%)", Amount: money.FromCents(20000)}, graph.Edges[1])
	assert.Equal(t, Edge{From: "Income", To: "Savings (20%)", Amount: money.FromCents(10000)}, graph.Edges[2])
	assert.Equal(t, Edge{From: "Income", To: "Unallocated", Amount: money.FromCents(30000)}, graph.Edges[3])

	// Tier-2 edges leave from the decorated category nodes
	assert.Contains(t, graph.Edges, Edge{From: "Needs (50%)", To: "Rent", Amount: money.FromCents(40000)})
	assert.Contains(t, graph.Edges, Edge{From: "Wants (30%)", To: "Dining", Amount: money.FromCents(20000)})
	assert.Contains(t, graph.Edges, Edge{From: "Savings (20%)", To: "ETF", Amount: money.FromCents(10000)})
}

func TestBuildFlowTierOneConservation(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(123456), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(50000), Type: transaction.Expense, Category: transaction.Needs},
		{Date: "2025-03-03", Label: "Games", Amount: money.FromCents(9999), Type: transaction.Expense, Category: transaction.Wants},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	var tierOneSum int64
	for _, e := range graph.Edges {
		if e.From == IncomeNode {
			tierOneSum += e.Amount.Cents
		}
	}
	assert.Equal(t, int64(123456), tierOneSum)
}

func TestBuildFlowMergesSameCategoryAndLabel(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(200000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(50000), Type: transaction.Expense, Category: transaction.Needs},
		{Date: "2025-03-16", Label: "Rent", Amount: money.FromCents(50000), Type: transaction.Expense, Category: transaction.Needs},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	var rentEdges []Edge
	for _, e := range graph.Edges {
		if e.To == "Rent" {
			rentEdges = append(rentEdges, e)
		}
	}
	require.Len(t, rentEdges, 1)
	assert.Equal(t, int64(100000), rentEdges[0].Amount.Cents)
}

func TestBuildFlowSameLabelDifferentCategoriesStaySeparate(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(200000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Subscriptions", Amount: money.FromCents(2000), Type: transaction.Expense, Category: transaction.Needs},
		{Date: "2025-03-03", Label: "Subscriptions", Amount: money.FromCents(3000), Type: transaction.Expense, Category: transaction.Wants},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	var edges []Edge
	for _, e := range graph.Edges {
		if e.To == "Subscriptions" {
			edges = append(edges, e)
		}
	}
	require.Len(t, edges, 2)
	assert.Equal(t, "Needs (50%)", edges[0].From)
	assert.Equal(t, "Wants (30%)", edges[1].From)
}

func TestBuildFlowLabelOrderByFirstAppearance(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(200000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Zoo", Amount: money.FromCents(2000), Type: transaction.Expense, Category: transaction.Wants},
		{Date: "2025-03-03", Label: "Apples", Amount: money.FromCents(500), Type: transaction.Expense, Category: transaction.Needs},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	var labels []string
	for _, e := range graph.Edges {
		if e.From != IncomeNode {
			labels = append(labels, e.To)
		}
	}
	assert.Equal(t, []string{"Zoo", "Apples"}, labels)
}

func TestBuildFlowNoZeroEdges(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(50000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(50000), Type: transaction.Expense, Category: transaction.Needs},
	}

	graph := BuildFlow(txs, defaultTargets())
	require.NotNil(t, graph)

	// Income fully allocated: no Unallocated node or edge
	for _, e := range graph.Edges {
		assert.True(t, e.Amount.IsPositive())
		assert.NotEqual(t, UnallocatedNode, e.To)
	}
	for _, n := range graph.Nodes {
		assert.NotEqual(t, UnallocatedNode, n.Name)
	}
}
