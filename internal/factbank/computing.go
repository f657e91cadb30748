package factbank

import "github.com/pkritika/cortex/internal/question"

var computingPool = []question.Question{
	q("comp-1", "Computing: Algorithms", "What is the time complexity of binary search?",
		"O(log n)", "O(n)", "O(n^2)", "O(1)"),
	q("comp-2", "Computing: Data Structures", "Which data structure follows the LIFO (Last In First Out) principle?",
		"Stack", "Queue", "Linked List", "Tree"),
	q("comp-3", "Computing: Networking", "What does HTTP stand for?",
		"HyperText Transfer Protocol", "HighText Transfer Protocol", "HyperText Transmission Protocol", "HyperText Transfer Program"),
	q("comp-4", "Computing: Algorithms", "Which sort algorithm has the best average-case time complexity?",
		"Merge Sort", "Bubble Sort", "Insertion Sort", "Selection Sort"),
	q("comp-5", "Computing: OS", "What is the primary function of an Operating System kernel?",
		"Manage system resources", "Run web browsers", "Compile code", "Design graphics"),
	q("comp-6", "Computing: OOP", "In Object-Oriented Programming, what is Polymorphism?",
		"The ability of different classes to be treated as instances of the same general class",
		"Hiding internal data from the outside",
		"Creating new classes from existing ones",
		"Organizing code into functions"),
	q("comp-7", "Computing: Databases", "Which of these is a NoSQL database?",
		"MongoDB", "PostgreSQL", "MySQL", "SQLite"),
	q("comp-8", "Computing: Networking", `What does the "S" in HTTPS stand for?`,
		"Secure", "Standard", "Simple", "System"),
	q("comp-9", "Computing: Hardware", `Which component is considered the "brain" of the computer?`,
		"CPU", "RAM", "GPU", "HDD"),
	q("comp-10", "Computing: OS", `What is a "Deadlock" in operating systems?`,
		"A situation where two processes are waiting for each other to release resources",
		"When the system crashes completely",
		"A security breach",
		"When the CPU overheats"),
}
