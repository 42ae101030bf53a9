package profile

var generic = Profile{
	Name:          Generic,
	ServiceName:   "QAForum",
	ChatPath:      "/chat",
	SessionPrefix: "chat",
	ChatSystemPrompt: "You are a helpful assistant for a community Q&A site. Answer clearly and concisely, " +
		"point to authoritative sources when facts matter, and say so when you are unsure.",
	FactCheckSystemPrompt: "You are an AI fact-checker for a community Q&A site. Analyze answers for accuracy, " +
		"completeness, and potential misinformation. Provide a verification status " +
		"(verified/needs_review/inaccurate) and helpful feedback.",
	FactCheckSubject: "community",
	Topics: []Topic{
		{
			Keywords: []string{"hello", "hi", "hey"},
			Reply: "Hello! I'm the site assistant. I can help you phrase a question, find related " +
				"discussions, or explain how voting and answers work. What would you like to know?",
		},
		{
			Keywords: []string{"how do i ask", "ask a question", "good question"},
			Reply: "Tips for a good question:\n\n• Use a specific, descriptive title\n• Explain what you " +
				"already tried\n• Add a few relevant tags\n• Pick the closest category so the right people see it",
		},
		{
			Keywords: []string{"vote", "downvote", "upvote"},
			Reply: "Each user has one vote per question or answer. Voting again replaces your previous " +
				"vote, so switching from an upvote to a downvote moves the score by two.",
		},
	},
	DefaultReply: "I understand you're asking about '%s'. I can help with writing questions, finding " +
		"answers, and explaining how the site works. Could you share a bit more detail?",
	Indicators: Indicators{
		High:    []string{"official", "documentation", "source", "according to", "study", "research", "specification"},
		Medium:  []string{"experience", "similar situation", "happened to me", "i did", "in my case"},
		Low:     []string{"i think", "maybe", "probably", "not sure", "could be", "might"},
		Warning: []string{"definitely", "guaranteed", "always works", "100%", "never fails"},
	},
	Feedback: Feedback{
		Unreliable:   "This answer contains uncertain language or potentially misleading claims. Please verify it against authoritative sources.",
		Sourced:      "This answer appears to reference authoritative sources and is likely reliable.",
		Experiential: "This answer is based on personal experience. It may be helpful, but details can differ between situations.",
		Unverified:   "This answer needs additional verification. Consider checking authoritative sources for confirmation.",
	},
	DefaultUrgency: "normal",
}

var immigration = Profile{
	Name:          Immigration,
	ServiceName:   "ImmigrantConnect",
	ChatPath:      "/immigration-chat",
	SessionPrefix: "immigration",
	ChatSystemPrompt: "You are an AI immigration assistant helping immigrants navigate processes, understand " +
		"requirements, and find resources. Provide accurate, helpful information about immigration laws, " +
		"procedures, documentation, and rights. Always recommend consulting official sources (USCIS, " +
		"immigration attorneys) for legal advice. Be empathetic and supportive to people facing immigration challenges.",
	FactCheckSystemPrompt: "You are an AI fact-checker for immigration-related questions. Analyze answers for " +
		"accuracy, completeness, and potential misinformation. Focus on immigration laws, procedures, " +
		"requirements, and timelines. Provide a verification status (verified/needs_review/inaccurate) and helpful feedback.",
	FactCheckSubject: "immigration-related",
	Topics: []Topic{
		{
			Keywords: []string{"hello", "hi", "hey"},
			Reply: "Hello! I'm your AI immigration assistant. I can help with questions about visas, green " +
				"cards, citizenship, documentation, and more. How can I help you today?",
		},
		{
			Keywords: []string{"visa", "work permit", "h1b", "f1", "tourist visa"},
			Reply: "Key things to know about visas:\n\n• Work visas (H-1B, L-1, O-1) require employer " +
				"sponsorship\n• Student visas (F-1, J-1) need acceptance from an accredited institution\n" +
				"• Tourist/business visas (B-1/B-2) are for temporary visits\n• Processing times vary by visa type and country",
		},
		{
			Keywords: []string{"green card", "permanent resident", "adjustment of status"},
			Reply: "Common green card paths are family-based, employment-based (EB-1, EB-2, EB-3), the " +
				"Diversity Visa Lottery, and asylum/refugee status. Typical steps: file the petition (I-130, " +
				"I-140), wait for a priority date, file I-485 or use consular processing, attend the interview.",
		},
		{
			Keywords: []string{"citizenship", "naturalization", "n-400"},
			Reply: "Naturalization generally requires 5+ years as a permanent resident (3 if married to a " +
				"US citizen), continuous residence, English ability, civics knowledge, and good moral character. " +
				"The process starts with Form N-400.",
		},
		{
			Keywords: []string{"documents", "paperwork", "forms", "application"},
			Reply: "Keep your passport, I-94 record, work authorization, certified civil documents, and tax " +
				"records organized. Make copies, translate foreign documents officially, and never submit " +
				"originals unless specifically required.",
		},
		{
			Keywords: []string{"timeline", "processing time", "how long"},
			Reply: "Processing times depend on the application type, service center, country of birth, and " +
				"whether USCIS requests more evidence. Check the USCIS processing times tool for current estimates.",
		},
		{
			Keywords: []string{"attorney", "lawyer", "legal help"},
			Reply: "Consider an immigration attorney for complex cases, prior violations, criminal history, " +
				"or removal proceedings. AILA, local bar associations, and legal aid clinics can help. Avoid notarios.",
		},
		{
			Keywords: []string{"costs", "fees", "money", "expensive"},
			Reply: "USCIS filing fees vary by form; attorney fees, medical exams, and translations add to the " +
				"total. Fee waivers (Form I-912) are available for some applications if you meet income requirements.",
		},
		{
			Keywords: []string{"denied", "rejected", "rfe", "noid"},
			Reply: "Respond to a Request for Evidence completely and before the deadline. A Notice of Intent " +
				"to Deny is more serious; consider an attorney. After a denial, review the notice for appeal " +
				"or motion options and their time limits.",
		},
	},
	DefaultReply: "I understand you're asking about '%s'. As your immigration AI assistant, I can help with " +
		"visas, green cards, citizenship, documents, timelines, costs, and finding legal help. Could you be " +
		"more specific? This is general information only; consult a qualified immigration attorney for legal advice.",
	Indicators: Indicators{
		High:    []string{"uscis", "official", "government", "federal register", "law", "regulation", "attorney", "lawyer"},
		Medium:  []string{"experience", "similar situation", "happened to me", "i did", "my case"},
		Low:     []string{"i think", "maybe", "probably", "not sure", "could be", "might"},
		Warning: []string{"definitely", "guaranteed", "always works", "100%", "never fails"},
	},
	Feedback: Feedback{
		Unreliable:   "This answer contains uncertain language or potentially misleading claims. Please verify information with official sources like USCIS or consult an immigration attorney.",
		Sourced:      "This answer appears to reference official sources and demonstrates good knowledge of immigration processes.",
		Experiential: "This answer is based on personal experience. While helpful, please verify specific details with official sources as immigration rules can vary by case.",
		Unverified:   "This answer needs additional verification. Consider consulting official government sources or an immigration professional for confirmation.",
		Timeline:     " Immigration timelines can vary significantly and change frequently. Check current USCIS processing times for the most accurate information.",
	},
	TimelineTerms:      []string{"visa", "green card", "citizenship", "immigration"},
	ExtendedUserFields: true,
	DefaultUrgency:     "normal",
}
