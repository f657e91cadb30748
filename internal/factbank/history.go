package factbank

import "github.com/pkritika/cortex/internal/question"

var historyPool = []question.Question{
	q("hist-1", "History: Modern", "Which year did World War I begin?",
		"1914", "1918", "1939", "1905"),
	q("hist-2", "History: Ancient Rome", "Who was the first Emperor of Rome?",
		"Augustus", "Julius Caesar", "Nero", "Caligula"),
	q("hist-3", "History: Medieval", "The Magna Carta was signed in which year?",
		"1215", "1492", "1066", "1776"),
	q("hist-4", "History: Pre-Columbian", "Which empire built Machu Picchu?",
		"Inca", "Aztec", "Maya", "Olmec"),
	q("hist-5", "History: Modern", `Who wrote "The Communist Manifesto"?`,
		"Karl Marx & Friedrich Engels", "Vladimir Lenin", "Joseph Stalin", "Adam Smith"),
	q("hist-6", "History: Modern", "The fall of the Berlin Wall occurred in which year?",
		"1989", "1991", "1985", "1961"),
	q("hist-7", "History: Ancient", "Which civilization developed the first known writing system (Cuneiform)?",
		"Sumerians", "Egyptians", "Phoenicians", "Greeks"),
	q("hist-8", "History: Modern", "Who was the British Prime Minister during most of World War II?",
		"Winston Churchill", "Neville Chamberlain", "Clement Attlee", "Tony Blair"),
	q("hist-9", "History: Modern", "The French Revolution began in:",
		"1789", "1776", "1812", "1848"),
	q("hist-10", "History: Exploration", "Who conquered the Aztec Empire?",
		"Hernán Cortés", "Francisco Pizarro", "Christopher Columbus", "Ferdinand Magellan"),
}
