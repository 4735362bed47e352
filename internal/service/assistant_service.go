package service

import (
	"fmt"
	"strings"

	"lumen/internal/models"

	"go.uber.org/zap"
)

// searchTerms is the fixed vocabulary the product-spend rule recognizes.
var searchTerms = []string{"chicken", "milk", "gas", "coffee", "book", "mouse", "cable", "detergent", "yogurt", "banana"}

// query carries one incoming message plus the aggregates every rule may
// need, computed once per call.
type query struct {
	message    string // lower-cased user message
	docs       []*models.Document
	byCategory map[string]float64
	categories []CategoryAmount // first-encountered order
	total      float64
	average    float64
}

// rule is one predicate→template pair. Rules are evaluated strictly in
// order and the first match wins, so priority is explicit and auditable.
type rule struct {
	name  string
	match func(q *query) bool
	reply func(q *query) string
}

// AssistantService resolves free-text questions about uploaded receipts
// into canned, figure-filled answers. Reply is total: every message maps
// to exactly one response string, never an error.
type AssistantService struct {
	rules  []rule
	logger *zap.Logger
}

func NewAssistantService(logger *zap.Logger) *AssistantService {
	return &AssistantService{
		rules:  assistantRules(),
		logger: logger,
	}
}

// Reply answers message against the caller's ordered document collection.
func (s *AssistantService) Reply(message string, docs []*models.Document) string {
	q := &query{
		message:    strings.ToLower(message),
		docs:       docs,
		byCategory: SpendingByCategory(docs),
		categories: CategoriesByFirstSeen(docs),
		total:      TotalSpent(docs),
		average:    AverageSpending(docs),
	}

	for _, r := range s.rules {
		if r.match(q) {
			s.logger.Debug("Assistant rule matched",
				zap.String("rule", r.name),
				zap.Int("documents", len(docs)),
			)
			return r.reply(q)
		}
	}

	// The fallback rule matches everything; this is unreachable.
	return ""
}

func assistantRules() []rule {
	return []rule{
		{
			name: "upload_prompt",
			match: func(q *query) bool {
				return len(q.docs) == 0 && containsAny(q.message, "upload", "document", "receipt")
			},
			reply: func(q *query) string {
				return "You haven't uploaded any documents yet. Click the 'Upload Bills/Receipts' button to get started. Once you upload invoices or receipts, I'll be able to analyze your spending in detail!"
			},
		},
		{
			name: "product_spend",
			match: func(q *query) bool {
				return len(q.docs) > 0 &&
					strings.Contains(q.message, "how much") &&
					containsAny(q.message, "spent on", "spend on") &&
					matchSearchTerm(q.message) != ""
			},
			reply: replyProductSpend,
		},
		{
			name: "category_breakdown",
			match: func(q *query) bool {
				return len(q.docs) > 0 && containsAny(q.message, "category", "categories")
			},
			reply: replyCategoryBreakdown,
		},
		{
			name: "category_detail",
			match: func(q *query) bool {
				return len(q.docs) > 0 && matchCategory(q) != ""
			},
			reply: replyCategoryDetail,
		},
		{
			name: "average",
			match: func(q *query) bool {
				return len(q.docs) > 0 && strings.Contains(q.message, "average")
			},
			reply: replyAverage,
		},
		{
			name: "savings_tips",
			match: func(q *query) bool {
				return len(q.docs) > 0 && containsAny(q.message, "reduce", "save", "cut")
			},
			reply: replySavingsTips,
		},
		{
			name: "total_spend",
			match: func(q *query) bool {
				return len(q.docs) > 0 && containsAny(q.message, "total", "how much did i spend")
			},
			reply: replyTotalSpend,
		},
		{
			name: "recent_items",
			match: func(q *query) bool {
				return len(q.docs) > 0 && containsAny(q.message, "show me", "list", "what did i buy")
			},
			reply: replyRecentItems,
		},
		{
			name: "merchant_detail",
			match: func(q *query) bool {
				return len(q.docs) > 0 && matchMerchant(q) != nil
			},
			reply: replyMerchantDetail,
		},
		{
			name: "capabilities",
			match: func(q *query) bool {
				return containsAny(q.message, "help", "what can you do")
			},
			reply: func(q *query) string {
				if len(q.docs) > 0 {
					return "I can analyze your uploaded receipts to: 📊 Show spending by category, 🔍 Find specific product purchases, 💰 Calculate averages, 📈 Track merchant spending, 🎯 Provide savings tips, and 📱 Answer questions about your purchases. Just ask!"
				}
				return "Upload your receipts and I can: 📊 Analyze spending patterns, 💰 Track specific products, 📈 Calculate category totals, 🎯 Provide personalized savings advice. Click 'Upload Bills/Receipts' to get started!"
			},
		},
		{
			name: "greeting",
			match: func(q *query) bool {
				return containsAny(q.message, "hi", "hello", "hey")
			},
			reply: func(q *query) string {
				if len(q.docs) > 0 {
					return fmt.Sprintf("Hello! I've analyzed %d document%s for you. Ask me anything about your spending! 😊", len(q.docs), plural(len(q.docs)))
				}
				return "Hello! Upload a receipt and I'll help you analyze your spending! 😊"
			},
		},
		{
			name: "thanks",
			match: func(q *query) bool {
				return strings.Contains(q.message, "thank")
			},
			reply: func(q *query) string {
				return "You're welcome! Keep uploading receipts and I'll help you track every penny. Smart spending starts with awareness! 💪"
			},
		},
		{
			name:  "fallback",
			match: func(q *query) bool { return true },
			reply: func(q *query) string {
				if len(q.docs) > 0 {
					return "I can help you analyze your uploaded receipts! Try asking: 'How much did I spend on groceries?' or 'Show me my spending by category' or 'What's my average spending?' or 'How can I reduce expenses?'"
				}
				return "Upload a receipt or invoice first, then I can answer detailed questions about your spending, specific products, categories, and provide personalized financial advice!"
			},
		},
	}
}

func replyProductSpend(q *query) string {
	term := matchSearchTerm(q.message)
	items := FindItemsByName(q.docs, term)
	if len(items) == 0 {
		return fmt.Sprintf("I couldn't find any purchases matching %q in your uploaded documents. Try uploading more receipts or ask about other items!", term)
	}

	var total float64
	parts := make([]string, len(items))
	for i, item := range items {
		total += item.Price
		parts[i] = fmt.Sprintf("%s ($%.2f)", item.Name, item.Price)
	}

	suffix := ""
	if len(items) > 1 {
		suffix = fmt.Sprintf("That's an average of $%.2f per item.", total/float64(len(items)))
	}
	return fmt.Sprintf("Based on your uploaded receipts, you spent $%.2f on items matching %q. Here's what I found: %s. %s",
		total, term, strings.Join(parts, ", "), suffix)
}

func replyCategoryBreakdown(q *query) string {
	sorted := SortedCategories(q.categories)
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = fmt.Sprintf("%s: $%.2f", c.Category, c.Amount)
	}
	return fmt.Sprintf("Here's your spending breakdown by category from your uploaded documents: %s. Your highest spending category is %s. Would you like suggestions on reducing spending in any area?",
		strings.Join(parts, ", "), sorted[0].Category)
}

func replyCategoryDetail(q *query) string {
	category := matchCategory(q)
	amount := q.byCategory[category]
	percentage := amount / q.total * 100

	itemCount := 0
	for _, doc := range q.docs {
		for _, item := range doc.Items {
			if item.Category == category {
				itemCount++
			}
		}
	}
	return fmt.Sprintf("You've spent $%.2f on %s, which is %.1f%% of your total spending ($%.2f). This category includes %d items.",
		amount, category, percentage, q.total, itemCount)
}

func replyAverage(q *query) string {
	tip := "Great job keeping your transactions moderate!"
	if q.average > 50 {
		tip = "Consider setting a spending limit per transaction to save more!"
	}
	return fmt.Sprintf("Your average spending per transaction is $%.2f. You've uploaded %d document%s totaling $%.2f. %s",
		q.average, len(q.docs), plural(len(q.docs)), q.total, tip)
}

func replySavingsTips(q *query) string {
	top := SortedCategories(q.categories)[0]
	return fmt.Sprintf("Here are personalized tips to reduce expenses: 1) Your highest spending is in %s ($%.2f). Consider buying generic brands or shopping sales. 2) Track every receipt like you're doing now - awareness is the first step! 3) Set category budgets: aim to reduce your top category by 15-20%%. 4) Use cashback apps for additional savings. Would you like specific tips for %s?",
		top.Category, top.Amount, top.Category)
}

func replyTotalSpend(q *query) string {
	parts := make([]string, len(q.docs))
	for i, doc := range q.docs {
		parts[i] = fmt.Sprintf("%s ($%.2f)", doc.Merchant, doc.Total)
	}
	return fmt.Sprintf("Based on your %d uploaded document%s, you've spent a total of $%.2f. Breakdown by merchant: %s. Your average purchase is $%.2f.",
		len(q.docs), plural(len(q.docs)), q.total, strings.Join(parts, ", "), q.average)
}

func replyRecentItems(q *query) string {
	recent := q.docs[len(q.docs)-1]
	parts := make([]string, len(recent.Items))
	for i, item := range recent.Items {
		parts[i] = fmt.Sprintf("%s (%dx $%.2f)", item.Name, item.Quantity, item.Price)
	}
	return fmt.Sprintf("Your most recent receipt from %s shows: %s. Total: $%.2f. Want to see items from other receipts?",
		recent.Merchant, strings.Join(parts, ", "), recent.Total)
}

func replyMerchantDetail(q *query) string {
	doc := matchMerchant(q)
	parts := make([]string, len(doc.Items))
	for i, item := range doc.Items {
		parts[i] = fmt.Sprintf("%s ($%.2f)", item.Name, item.Price)
	}
	return fmt.Sprintf("At %s on %s, you purchased: %s. Total: $%.2f.",
		doc.Merchant, doc.Date, strings.Join(parts, ", "), doc.Total)
}

// matchSearchTerm returns the first vocabulary term the message mentions,
// or "" when none does.
func matchSearchTerm(message string) string {
	for _, term := range searchTerms {
		if strings.Contains(message, term) {
			return term
		}
	}
	return ""
}

// matchCategory returns a category present in the data whose name occurs
// anywhere in the message. Substring semantics are deliberate: mid-word
// hits match, exactly as the original behavior. Candidates are checked in
// first-encountered order, so when a message names two categories the one
// seen earlier in the collection wins.
func matchCategory(q *query) string {
	for _, c := range q.categories {
		if strings.Contains(q.message, strings.ToLower(c.Category)) {
			return c.Category
		}
	}
	return ""
}

// matchMerchant returns the first document whose merchant name occurs in
// the message, in upload order.
func matchMerchant(q *query) *models.Document {
	for _, doc := range q.docs {
		if strings.Contains(q.message, strings.ToLower(doc.Merchant)) {
			return doc
		}
	}
	return nil
}

func containsAny(message string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(message, term) {
			return true
		}
	}
	return false
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
