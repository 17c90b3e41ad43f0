package flow

import (
	"fmt"

	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
)

// Node is a labelled vertex of the money flow graph.
type Node struct {
	Name string
}

// Edge is a directed weighted connection between two nodes. Weights are
// always positive.
type Edge struct {
	From   string
	To     string
	Amount money.Money
}

// Graph is a three-tier decomposition of a reporting window: total income
// flows into the budget categories, which flow into the individual expense
// labels. Money not spent in a tracked category leaves through the
// Unallocated node.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

const (
	IncomeNode      = "Income"
	UnallocatedNode = "Unallocated"
)

// BuildFlow decomposes the transactions into a flow graph. Returns nil when
// the window has no income, since a flow without a source cannot be drawn.
// Expenses sharing a (category, label) pair merge into a single edge; label
// nodes appear in order of first appearance in the input. The tier-1 edge
// weights, Unallocated included, sum exactly to the total income when
// spending stays within it.
func BuildFlow(txs []transaction.Transaction, targets budget.Targets) *Graph {
	var totalIncome money.Money
	for _, tx := range txs {
		if tx.Type == transaction.Income {
			totalIncome = totalIncome.Add(tx.Amount)
		}
	}
	if !totalIncome.IsPositive() {
		return nil
	}

	type labelKey struct {
		category transaction.Category
		label    string
	}
	byLabel := map[labelKey]money.Money{}
	byCategory := map[transaction.Category]money.Money{}
	labelOrder := make([]labelKey, 0)

	for _, tx := range txs {
		if tx.Type != transaction.Expense || !tx.Category.IsTrackedExpense() {
			continue
		}
		key := labelKey{tx.Category, tx.Label}
		if _, seen := byLabel[key]; !seen {
			labelOrder = append(labelOrder, key)
		}
		byLabel[key] = byLabel[key].Add(tx.Amount)
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
	}

	graph := &Graph{
		Nodes: []Node{{Name: IncomeNode}},
	}

	var allocated money.Money
	categoryNames := map[transaction.Category]string{}
	for _, category := range transaction.ExpenseCategories() {
		spent := byCategory[category]
		if !spent.IsPositive() {
			continue
		}
		name := categoryNodeName(category, targets)
		categoryNames[category] = name
		graph.Nodes = append(graph.Nodes, Node{Name: name})
		graph.Edges = append(graph.Edges, Edge{From: IncomeNode, To: name, Amount: spent})
		allocated = allocated.Add(spent)
	}

	unallocated := totalIncome.Sub(allocated)
	if unallocated.IsPositive() {
		graph.Nodes = append(graph.Nodes, Node{Name: UnallocatedNode})
		graph.Edges = append(graph.Edges, Edge{From: IncomeNode, To: UnallocatedNode, Amount: unallocated})
	}

	for _, key := range labelOrder {
		graph.Nodes = append(graph.Nodes, Node{Name: key.label})
		graph.Edges = append(graph.Edges, Edge{
			From:   categoryNames[key.category],
			To:     key.label,
			Amount: byLabel[key],
		})
	}

	return graph
}

// categoryNodeName decorates the bucket with its target share, e.g.
// "Needs (50%)".
func categoryNodeName(category transaction.Category, targets budget.Targets) string {
	title := map[transaction.Category]string{
		transaction.Needs:   "Needs",
		transaction.Wants:   "Wants",
		transaction.Savings: "Savings",
	}[category]
	return fmt.Sprintf("%s (%.0f%%)", title, targets.Fraction(category)*100)
}
