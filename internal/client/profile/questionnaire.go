package profile

// Question is one multiple-choice item; answers store the 0-based option index.
type Question struct {
	ID      string
	Text    string
	Options []string
}

var questionnaire = []Question{
	{ID: "1", Text: "How old are you?",
		Options: []string{"Up to 25", "26 to 35", "36 to 55", "Over 55"}},
	{ID: "2", Text: "What is your main source of income?",
		Options: []string{"Salary or pension", "Earnings from my own business", "Income from investments or real estate", "Other"}},
	{ID: "3", Text: "What is your investment goal?",
		Options: []string{"Preserve my capital", "Beat the savings account", "Build wealth over the long term", "High returns, even with risk"}},
	{ID: "4", Text: "What is your investment horizon?",
		Options: []string{"Up to 1 year", "1 to 3 years", "3 to 5 years", "More than 5 years"}},
	{ID: "5", Text: "How would you feel if your investments lost 10% in a short period?",
		Options: []string{"Very uncomfortable, I would withdraw", "Worried, but I would hold", "I would see it as normal", "I would invest more"}},
	{ID: "6", Text: "What is your investment experience?",
		Options: []string{"None", "Savings accounts and CDs", "Funds or stocks", "Derivatives, equities and crypto"}},
	{ID: "7", Text: "How much of a financial loss can you handle?",
		Options: []string{"Up to 10%", "10% to 25%", "25% to 50%", "More than 50%"}},
	{ID: "8", Text: "How much of your capital do you plan to invest?",
		Options: []string{"Up to 10%", "10% to 25%", "25% to 50%", "More than 50%"}},
}

// OptionsPerQuestion is the number of choices every question offers.
const OptionsPerQuestion = 4

// Questionnaire returns the questions in presentation order.
func Questionnaire() []Question {
	out := make([]Question, len(questionnaire))
	for i, q := range questionnaire {
		out[i] = Question{ID: q.ID, Text: q.Text, Options: append([]string(nil), q.Options...)}
	}
	return out
}

// QuestionCount is the number of defined questions, the strict-mode divisor.
func QuestionCount() int { return len(questionnaire) }
