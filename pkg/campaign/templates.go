package campaign

import "fmt"

// Static fallback content served whenever the model path fails

var templateEmails = []CampaignEmail{
	{
		Subject:       "A quick introduction",
		Body:          "Hi there,\n\nI work with a team of financial professionals helping families build a plan for their future. I'd love to share a little about what we do and hear what matters most to you.\n\nWould a quick 15-minute call this week work?",
		SendDayOffset: 0,
	},
	{
		Subject:       "The three questions most families can't answer",
		Body:          "Hi again,\n\nMost families we meet can't answer three questions: How much do I need to retire? What happens to my family if something happens to me? Where does my money actually go each month?\n\nIf any of those hit home, let's talk. No pressure, just a conversation.",
		SendDayOffset: 3,
	},
	{
		Subject:       "Last note from me",
		Body:          "Hi,\n\nI won't keep filling your inbox. If now isn't the right time, that's completely fine.\n\nWhen you're ready to put a plan on paper, my door is open. Just reply to this email and we'll find a time.",
		SendDayOffset: 7,
	},
	{
		Subject:       "One resource worth keeping",
		Body:          "Hi,\n\nAttached is the one-page overview we walk through with every family. Even if we never work together, it's a useful checklist for any household budget.\n\nHappy to walk through it with you any time.",
		SendDayOffset: 10,
	},
	{
		Subject:       "An invitation",
		Body:          "Hi,\n\nWe host a short online overview every week covering how our team works and the career opportunity behind it. You're welcome to sit in and just listen.\n\nReply and I'll send the next date.",
		SendDayOffset: 14,
	},
	{
		Subject:       "Checking in",
		Body:          "Hi,\n\nJust checking in. If your situation has changed since we last spoke, I'd be glad to revisit the numbers with you.\n\nEither way, I hope things are going well.",
		SendDayOffset: 18,
	},
	{
		Subject:       "Thank you",
		Body:          "Hi,\n\nThank you for reading along. If there's one thing to take away, it's this: a written plan beats a good intention every time.\n\nWhenever you want to start yours, I'm here.",
		SendDayOffset: 21,
	},
}

// fallbackEmailCampaign returns the first emailCount template emails
func fallbackEmailCampaign(audience string, emailCount int) *EmailCampaignResponse {
	if emailCount > len(templateEmails) {
		emailCount = len(templateEmails)
	}

	emails := make([]CampaignEmail, emailCount)
	copy(emails, templateEmails[:emailCount])

	return &EmailCampaignResponse{
		CampaignName: fmt.Sprintf("Starter outreach: %s", audience),
		Emails:       emails,
		AIGenerated:  false,
	}
}

var templateMessages = map[string][]string{
	"english": {
		"Hi! I'm building a team of people who want to learn the financial services business part-time. Would you be open to a 15-minute intro call?",
		"Hello! We help families with financial education and we're growing our local team. If you've ever thought about a side career, I'd love to chat.",
		"Hi there — no pitch, just a question: have you ever wanted to learn how money really works? Our team teaches exactly that, and we're hiring.",
	},
	"spanish": {
		"¡Hola! Estoy formando un equipo de personas que quieren aprender el negocio de servicios financieros a tiempo parcial. ¿Te gustaría una llamada de 15 minutos?",
		"¡Buenas! Ayudamos a las familias con educación financiera y estamos creciendo nuestro equipo local. Si alguna vez pensaste en una carrera adicional, me encantaría conversar.",
		"Hola — sin compromiso, solo una pregunta: ¿alguna vez quisiste aprender cómo funciona realmente el dinero? Nuestro equipo enseña exactamente eso, y estamos contratando.",
	},
	"tagalog": {
		"Kumusta! Bumubuo ako ng team ng mga taong gustong matuto ng financial services business nang part-time. Gusto mo bang mag-usap ng 15 minuto?",
		"Hello! Tumutulong kami sa mga pamilya sa financial education at lumalaki ang aming local team. Kung naisip mo nang magkaroon ng side career, makipag-usap tayo.",
		"Kumusta — walang pilitan, tanong lang: gusto mo bang matutunan kung paano talaga gumagana ang pera? Iyan mismo ang itinuturo ng team namin, at kumukuha kami ng bagong miyembro.",
	},
}

// fallbackLeadGenText serves canned messages for the requested language,
// defaulting to English when the language has no template set.
func fallbackLeadGenText(language string, messageCount int) *LeadGenTextResponse {
	key := normalizeLanguage(language)
	messages, ok := templateMessages[key]
	if !ok {
		messages = templateMessages["english"]
	}

	if messageCount > len(messages) {
		messageCount = len(messages)
	}

	out := make([]string, messageCount)
	copy(out, messages[:messageCount])

	return &LeadGenTextResponse{
		Language:    language,
		Messages:    out,
		AIGenerated: false,
	}
}

func normalizeLanguage(language string) string {
	switch language {
	case "es", "ES", "Spanish", "spanish", "Español", "español":
		return "spanish"
	case "tl", "TL", "Tagalog", "tagalog", "Filipino", "filipino":
		return "tagalog"
	default:
		return "english"
	}
}
