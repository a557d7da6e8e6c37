package dispatcher

// quickQuestions is the pool quick questions are drawn from.
var quickQuestions = [...]string{
	"What made you smile today?",
	"If you could have dinner with anyone, who would it be?",
	"What's a small thing you're grateful for right now?",
	"Which song always puts you in a good mood?",
	"What's the best advice you've ever received?",
	"If you could live anywhere for a year, where would it be?",
	"What's something new you learned this week?",
	"What's your favorite way to spend a lazy Sunday?",
	"Who is someone you'd like to thank today?",
	"What's one thing on your bucket list?",
}

// QuickQuestions returns a copy of the quick question pool.
func QuickQuestions() []string {
	return append([]string(nil), quickQuestions[:]...)
}

func (d *dispatcher) randomQuestion() string {
	return quickQuestions[d.pick(len(quickQuestions))]
}
