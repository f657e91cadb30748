package factbank

import "github.com/pkritika/cortex/internal/question"

const (
	physics   = "Science: Physics"
	biology   = "Science: Biology"
	chemistry = "Science: Chemistry"
)

var sciencePool = []question.Question{
	q("sci-phy-1", physics, "In Quantum Mechanics, what is the Heisenberg Uncertainty Principle?",
		"It is impossible to know both the position and momentum of a particle with perfect accuracy.",
		"Energy can neither be created nor destroyed, only transformed.",
		"The entropy of an isolated system always increases.",
		"Every action has an equal and opposite reaction."),
	q("sci-phy-2", physics, "What is the speed of light in a vacuum (approximately)?",
		"300,000 km/s", "150,000 km/s", "3,000 km/s", "30,000 km/s"),
	q("sci-phy-3", physics, "Which particle is responsible for mediating the strong nuclear force?",
		"Gluon", "Photon", "Boson", "Electron"),
	q("sci-bio-1", biology, `Which organelle is known as the "powerhouse" of the cell?`,
		"Mitochondria", "Nucleus", "Ribosome", "Golgi Apparatus"),
	q("sci-bio-2", biology, "What is the primary function of Hemoglobin?",
		"Transporting oxygen in the blood", "Fighting infection", "Clotting blood", "Digesting food"),
	q("sci-bio-3", biology, "What is the process by which plants convert light energy into chemical energy?",
		"Photosynthesis", "Respiration", "Fermentation", "Transpiration"),
	q("sci-chem-1", chemistry, "What is the pH of a neutral solution at 25°C?",
		"7", "0", "14", "1"),
	q("sci-chem-2", chemistry, "Which element has the atomic number 6?",
		"Carbon", "Oxygen", "Nitrogen", "Hydrogen"),
	q("sci-chem-3", chemistry, "What kind of bond involves the sharing of electron pairs between atoms?",
		"Covalent Bond", "Ionic Bond", "Hydrogen Bond", "Metallic Bond"),
	q("sci-phy-4", physics, "Who proposed the Theory of General Relativity?",
		"Albert Einstein", "Isaac Newton", "Niels Bohr", "Marie Curie"),
}
