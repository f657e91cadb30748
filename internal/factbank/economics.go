package factbank

import "github.com/pkritika/cortex/internal/question"

var economicsPool = []question.Question{
	q("econ-1", "Economics: Microeconomics", "What happens to the equilibrium price when demand increases and supply remains constant?",
		"Price Increases", "Price Decreases", "Price Stays Same", "Price becomes zero"),
	q("econ-2", "Economics: Market Structures", "Which term describes a market structure with a single seller?",
		"Monopoly", "Oligopoly", "Perfect Competition", "Monopsony"),
	q("econ-3", "Economics: Macroeconomics", "What is GDP?",
		"Gross Domestic Product", "General Domestic Price", "Global Development Plan", "Gross Demand Product"),
	q("econ-4", "Economics: Production", `The "Law of Diminishing Returns" applies to:`,
		"The short run", "The long run", "Both short and long run", "Neither"),
	q("econ-5", "Economics: Macroeconomics", `What is "inflation"?`,
		"A general increase in prices", "A decrease in prices", "An increase in employment", "A decrease in money supply"),
	q("econ-6", "Economics: Microeconomics", "Opportunity Cost is defined as:",
		"The value of the next best alternative foregone",
		"The total cost of production",
		"The price of a product",
		"The cost of raw materials"),
	q("econ-7", "Economics: History", `Who is considered the "Father of Modern Economics"?`,
		"Adam Smith", "John Maynard Keynes", "Karl Marx", "Milton Friedman"),
	q("econ-8", "Economics: Policy", "Which policy is controlled by the Central Bank?",
		"Monetary Policy", "Fiscal Policy", "Trade Policy", "Labor Policy"),
	q("econ-9", "Economics: Finance", `A "Bear Market" suggests that stock prices are:`,
		"Falling", "Rising", "Stable", "Volatile"),
	q("econ-10", "Economics: Theory", `What does the "Invisible Hand" refer to?`,
		"The self-regulating nature of the marketplace",
		"Government intervention",
		"Corporate monopolies",
		"Under-the-table deals"),
}
