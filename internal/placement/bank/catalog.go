package bank

// The 22 fixed competency categories, in catalog order. Question ids embed the
// 1-based index of their competency, e.g. "3-B1".
var competencies = []string{
	"Basic Greetings",
	"Numbers and Time",
	"Family and Relationships",
	"Food and Dining",
	"Travel and Directions",
	"Shopping and Money",
	"Work and Professions",
	"Health and Body",
	"Weather and Seasons",
	"Hobbies and Leisure",
	"Present Tenses",
	"Past Tenses",
	"Future Forms",
	"Modal Verbs",
	"Conditionals",
	"Passive Voice",
	"Reported Speech",
	"Articles and Determiners",
	"Prepositions",
	"Phrasal Verbs",
	"Idiomatic Expressions",
	"Academic Writing",
}

// catalog is the static question bank. Not every competency carries items at
// every level; the selector skips competencies with fewer than two matches.
var catalog = []Question{
	// 1. Basic Greetings
	{ID: "1-A1", Competency: "Basic Greetings", Level: LevelA1, CorrectAnswer: 0,
		Text:    "Which phrase do you use to greet someone in the morning?",
		Options: []string{"Good morning", "Good night", "Goodbye", "See you later"}},
	{ID: "1-A2", Competency: "Basic Greetings", Level: LevelA2, CorrectAnswer: 2,
		Text:    "Your friend says 'How's it going?'. What is the most natural reply?",
		Options: []string{"I am going by bus", "It goes", "Not bad, thanks", "Yes, please"}},
	{ID: "1-B1", Competency: "Basic Greetings", Level: LevelB1, CorrectAnswer: 1,
		Text:    "Which greeting is most appropriate when meeting a client for the first time?",
		Options: []string{"Hey, what's up?", "Pleased to meet you", "Long time no see", "Alright, mate?"}},
	{ID: "1-B2", Competency: "Basic Greetings", Level: LevelB2, CorrectAnswer: 3,
		Text:    "'I'd like to extend a warm welcome to our guests.' The speaker is most likely:",
		Options: []string{"Saying goodbye", "Complaining", "Asking for help", "Opening a formal event"}},

	// 2. Numbers and Time
	{ID: "2-A1", Competency: "Numbers and Time", Level: LevelA1, CorrectAnswer: 1,
		Text:    "What time is 'half past three'?",
		Options: []string{"3:15", "3:30", "3:45", "2:30"}},
	{ID: "2-A2", Competency: "Numbers and Time", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'The meeting is at a quarter to ten.' When does it start?",
		Options: []string{"9:45", "10:15", "10:45", "9:15"}},
	{ID: "2-B1", Competency: "Numbers and Time", Level: LevelB1, CorrectAnswer: 2,
		Text:    "Which sentence uses the date correctly?",
		Options: []string{"My birthday is on May", "I was born at 1998", "The course starts on the 3rd of September", "See you in Monday"}},
	{ID: "2-B2", Competency: "Numbers and Time", Level: LevelB2, CorrectAnswer: 1,
		Text:    "'The turnout roughly doubled, from 450 to ___.'",
		Options: []string{"225", "900", "475", "4500"}},

	// 3. Family and Relationships
	{ID: "3-A1", Competency: "Family and Relationships", Level: LevelA1, CorrectAnswer: 2,
		Text:    "Your mother's brother is your:",
		Options: []string{"cousin", "nephew", "uncle", "grandfather"}},
	{ID: "3-A2", Competency: "Family and Relationships", Level: LevelA2, CorrectAnswer: 0,
		Text:    "Which word describes your sister's daughter?",
		Options: []string{"niece", "nephew", "aunt", "stepmother"}},
	{ID: "3-B1", Competency: "Family and Relationships", Level: LevelB1, CorrectAnswer: 3,
		Text:    "'They get on really well' means they:",
		Options: []string{"travel together", "argue often", "live together", "have a good relationship"}},
	{ID: "3-B2", Competency: "Family and Relationships", Level: LevelB2, CorrectAnswer: 1,
		Text:    "Someone described as your 'in-laws' is related to you:",
		Options: []string{"by blood", "through marriage", "through adoption", "through work"}},

	// 4. Food and Dining
	{ID: "4-A1", Competency: "Food and Dining", Level: LevelA1, CorrectAnswer: 1,
		Text:    "Which of these is a fruit?",
		Options: []string{"carrot", "apple", "bread", "cheese"}},
	{ID: "4-A2", Competency: "Food and Dining", Level: LevelA2, CorrectAnswer: 3,
		Text:    "In a restaurant, what do you ask for at the end of the meal?",
		Options: []string{"the menu", "a starter", "the kitchen", "the bill"}},
	{ID: "4-B1", Competency: "Food and Dining", Level: LevelB1, CorrectAnswer: 0,
		Text:    "'I'll have the steak, rare.' The customer wants the steak:",
		Options: []string{"lightly cooked", "well cooked", "without sauce", "as a dessert"}},
	{ID: "4-B2", Competency: "Food and Dining", Level: LevelB2, CorrectAnswer: 2,
		Text:    "A dish described as 'savoury' is:",
		Options: []string{"sweet", "spoiled", "not sweet", "vegetarian"}},

	// 5. Travel and Directions
	{ID: "5-A1", Competency: "Travel and Directions", Level: LevelA1, CorrectAnswer: 0,
		Text:    "'Turn left at the bank.' Which way do you go?",
		Options: []string{"left", "right", "straight on", "back"}},
	{ID: "5-A2", Competency: "Travel and Directions", Level: LevelA2, CorrectAnswer: 2,
		Text:    "Where do you wait for a train?",
		Options: []string{"at the gate", "on the runway", "on the platform", "at the bus stop"}},
	{ID: "5-B1", Competency: "Travel and Directions", Level: LevelB1, CorrectAnswer: 1,
		Text:    "'Our flight was delayed, so we missed the connection.' The passengers:",
		Options: []string{"arrived early", "did not catch their second flight", "cancelled the trip", "lost their luggage"}},
	{ID: "5-B2", Competency: "Travel and Directions", Level: LevelB2, CorrectAnswer: 3,
		Text:    "An 'off the beaten track' destination is:",
		Options: []string{"dangerous", "expensive", "easy to reach", "rarely visited by tourists"}},

	// 6. Shopping and Money
	{ID: "6-A1", Competency: "Shopping and Money", Level: LevelA1, CorrectAnswer: 1,
		Text:    "'How much is this?' asks about:",
		Options: []string{"the size", "the price", "the colour", "the time"}},
	{ID: "6-A2", Competency: "Shopping and Money", Level: LevelA2, CorrectAnswer: 0,
		Text:    "If a jacket is 'half price' and cost 80, you now pay:",
		Options: []string{"40", "160", "20", "80"}},
	{ID: "6-B1", Competency: "Shopping and Money", Level: LevelB1, CorrectAnswer: 2,
		Text:    "'Keep the receipt in case you want a refund.' A refund is:",
		Options: []string{"a discount", "a guarantee", "your money back", "a replacement"}},
	{ID: "6-B2", Competency: "Shopping and Money", Level: LevelB2, CorrectAnswer: 1,
		Text:    "Someone who 'lives beyond their means' is:",
		Options: []string{"saving carefully", "spending more than they earn", "earning a high salary", "avoiding shops"}},

	// 7. Work and Professions
	{ID: "7-A1", Competency: "Work and Professions", Level: LevelA1, CorrectAnswer: 3,
		Text:    "Who works in a hospital?",
		Options: []string{"a pilot", "a farmer", "a waiter", "a nurse"}},
	{ID: "7-A2", Competency: "Work and Professions", Level: LevelA2, CorrectAnswer: 1,
		Text:    "'What do you do?' is a question about your:",
		Options: []string{"hobbies", "job", "plans today", "family"}},
	{ID: "7-B1", Competency: "Work and Professions", Level: LevelB1, CorrectAnswer: 0,
		Text:    "'She was promoted last month' means she:",
		Options: []string{"moved to a higher position", "lost her job", "changed companies", "went on holiday"}},
	{ID: "7-B2", Competency: "Work and Professions", Level: LevelB2, CorrectAnswer: 2,
		Text:    "'He handed in his notice' means he:",
		Options: []string{"was dismissed", "asked for a raise", "resigned", "took notes"}},
	{ID: "7-C1", Competency: "Work and Professions", Level: LevelC1, CorrectAnswer: 1,
		Text:    "A 'glass ceiling' refers to:",
		Options: []string{"an open-plan office", "an invisible barrier to promotion", "a transparent pay policy", "a fragile economy"}},
	{ID: "7-C2", Competency: "Work and Professions", Level: LevelC2, CorrectAnswer: 3,
		Text:    "'The restructuring was a euphemism for redundancies.' The word 'euphemism' implies the term was:",
		Options: []string{"technically precise", "openly hostile", "legally required", "a softer substitute for something unpleasant"}},

	// 8. Health and Body
	{ID: "8-A1", Competency: "Health and Body", Level: LevelA1, CorrectAnswer: 2,
		Text:    "You hear with your:",
		Options: []string{"eyes", "nose", "ears", "hands"}},
	{ID: "8-A2", Competency: "Health and Body", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'I have a sore throat.' Which part of the body hurts?",
		Options: []string{"the throat", "the stomach", "the back", "the knee"}},
	{ID: "8-B1", Competency: "Health and Body", Level: LevelB1, CorrectAnswer: 3,
		Text:    "A doctor gives you a 'prescription' so that you can:",
		Options: []string{"book an operation", "prove you are ill", "see a specialist", "get medicine from a pharmacy"}},
	{ID: "8-B2", Competency: "Health and Body", Level: LevelB2, CorrectAnswer: 1,
		Text:    "'She's finally over the flu' means she:",
		Options: []string{"still has a fever", "has recovered", "caught it again", "is seeing a doctor"}},
	{ID: "8-C1", Competency: "Health and Body", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'The symptoms subsided after treatment.' The symptoms:",
		Options: []string{"became less severe", "got worse", "spread", "returned"}},
	{ID: "8-C2", Competency: "Health and Body", Level: LevelC2, CorrectAnswer: 2,
		Text:    "A 'debilitating' condition is one that:",
		Options: []string{"is easily cured", "has no symptoms", "severely weakens the sufferer", "affects only children"}},

	// 9. Weather and Seasons
	{ID: "9-A1", Competency: "Weather and Seasons", Level: LevelA1, CorrectAnswer: 1,
		Text:    "In which season does it usually snow?",
		Options: []string{"summer", "winter", "spring", "autumn"}},
	{ID: "9-A2", Competency: "Weather and Seasons", Level: LevelA2, CorrectAnswer: 3,
		Text:    "'It's pouring outside.' You will need:",
		Options: []string{"sunglasses", "a fan", "sun cream", "an umbrella"}},
	{ID: "9-B1", Competency: "Weather and Seasons", Level: LevelB1, CorrectAnswer: 0,
		Text:    "A 'mild' winter is:",
		Options: []string{"not very cold", "extremely cold", "very windy", "short"}},
	{ID: "9-B2", Competency: "Weather and Seasons", Level: LevelB2, CorrectAnswer: 2,
		Text:    "'The match was called off due to adverse weather.' The weather was:",
		Options: []string{"perfect", "improving", "bad", "hot"}},
	{ID: "9-C1", Competency: "Weather and Seasons", Level: LevelC1, CorrectAnswer: 1,
		Text:    "'A sweltering afternoon' describes heat that is:",
		Options: []string{"pleasant", "oppressive", "dry", "brief"}},
	{ID: "9-C2", Competency: "Weather and Seasons", Level: LevelC2, CorrectAnswer: 0,
		Text:    "'The drought wrought havoc on the harvest.' The drought:",
		Options: []string{"caused great damage", "slightly delayed", "improved", "barely affected"}},

	// 10. Hobbies and Leisure
	{ID: "10-A1", Competency: "Hobbies and Leisure", Level: LevelA1, CorrectAnswer: 0,
		Text:    "Which activity do you do in a swimming pool?",
		Options: []string{"swim", "ski", "climb", "paint"}},
	{ID: "10-A2", Competency: "Hobbies and Leisure", Level: LevelA2, CorrectAnswer: 2,
		Text:    "'I'm really into photography' means the speaker:",
		Options: []string{"dislikes it", "is learning it", "likes it a lot", "teaches it"}},
	{ID: "10-B1", Competency: "Hobbies and Leisure", Level: LevelB1, CorrectAnswer: 1,
		Text:    "'I took up the guitar last year' means the speaker:",
		Options: []string{"stopped playing", "started learning it", "bought a new one", "performed in public"}},
	{ID: "10-B2", Competency: "Hobbies and Leisure", Level: LevelB2, CorrectAnswer: 3,
		Text:    "An 'avid' reader is someone who reads:",
		Options: []string{"slowly", "aloud", "occasionally", "enthusiastically"}},

	// 11. Present Tenses
	{ID: "11-A1", Competency: "Present Tenses", Level: LevelA1, CorrectAnswer: 1,
		Text:    "Choose the correct form: 'She ___ coffee every morning.'",
		Options: []string{"drink", "drinks", "drinking", "is drink"}},
	{ID: "11-A2", Competency: "Present Tenses", Level: LevelA2, CorrectAnswer: 2,
		Text:    "'Listen! Someone ___ the piano.'",
		Options: []string{"plays", "play", "is playing", "played"}},
	{ID: "11-B1", Competency: "Present Tenses", Level: LevelB1, CorrectAnswer: 0,
		Text:    "'I ___ here since 2019.'",
		Options: []string{"have worked", "work", "am working", "worked"}},
	{ID: "11-B2", Competency: "Present Tenses", Level: LevelB2, CorrectAnswer: 3,
		Text:    "'She ___ for the exam all week, so she's exhausted.'",
		Options: []string{"studies", "is studying", "has studied", "has been studying"}},
	{ID: "11-C1", Competency: "Present Tenses", Level: LevelC1, CorrectAnswer: 1,
		Text:    "Which sentence expresses an annoying habit?",
		Options: []string{"He leaves early on Fridays", "He's always leaving his keys in the door", "He has left already", "He is leaving tomorrow"}},
	{ID: "11-C2", Competency: "Present Tenses", Level: LevelC2, CorrectAnswer: 2,
		Text:    "'The committee ___ divided on the issue' — which form treats the committee as individuals?",
		Options: []string{"is", "has", "are", "was being"}},

	// 12. Past Tenses
	{ID: "12-A1", Competency: "Past Tenses", Level: LevelA1, CorrectAnswer: 0,
		Text:    "Choose the past form of 'go': 'Yesterday I ___ to school.'",
		Options: []string{"went", "go", "gone", "goed"}},
	{ID: "12-A2", Competency: "Past Tenses", Level: LevelA2, CorrectAnswer: 3,
		Text:    "'We ___ TV when the phone rang.'",
		Options: []string{"watch", "watched", "have watched", "were watching"}},
	{ID: "12-B1", Competency: "Past Tenses", Level: LevelB1, CorrectAnswer: 1,
		Text:    "'By the time we arrived, the film ___.'",
		Options: []string{"already started", "had already started", "has already started", "was starting"}},
	{ID: "12-B2", Competency: "Past Tenses", Level: LevelB2, CorrectAnswer: 2,
		Text:    "'I ___ smoke, but I gave it up years ago.'",
		Options: []string{"was used to", "use to", "used to", "would to"}},
	{ID: "12-C1", Competency: "Past Tenses", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'Hardly ___ the house when it started to rain.'",
		Options: []string{"had I left", "I had left", "I left", "did I leave"}},
	{ID: "12-C2", Competency: "Past Tenses", Level: LevelC2, CorrectAnswer: 3,
		Text:    "'She ___ have been at the party — I saw her car outside all evening.'",
		Options: []string{"mustn't", "shouldn't", "wouldn't", "can't"}},

	// 13. Future Forms
	{ID: "13-A1", Competency: "Future Forms", Level: LevelA1, CorrectAnswer: 2,
		Text:    "'I ___ visit my grandmother tomorrow.'",
		Options: []string{"did", "have", "will", "was"}},
	{ID: "13-A2", Competency: "Future Forms", Level: LevelA2, CorrectAnswer: 1,
		Text:    "'Look at those clouds! It ___ rain.'",
		Options: []string{"will", "is going to", "would", "does"}},
	{ID: "13-B1", Competency: "Future Forms", Level: LevelB1, CorrectAnswer: 3,
		Text:    "'The train ___ at 6:40 according to the timetable.'",
		Options: []string{"will have left", "is going to leave", "shall leave", "leaves"}},
	{ID: "13-B2", Competency: "Future Forms", Level: LevelB2, CorrectAnswer: 0,
		Text:    "'By next June, I ___ here for ten years.'",
		Options: []string{"will have been working", "will work", "am working", "will be worked"}},
	{ID: "13-C1", Competency: "Future Forms", Level: LevelC1, CorrectAnswer: 2,
		Text:    "'The delegates ___ to arrive at noon' — which verb makes this a formal schedule?",
		Options: []string{"want", "go", "are due", "will"}},
	{ID: "13-C2", Competency: "Future Forms", Level: LevelC2, CorrectAnswer: 1,
		Text:    "'We were to have signed the contract on Friday.' The signing:",
		Options: []string{"happened as planned", "did not happen", "happened early", "will happen soon"}},

	// 14. Modal Verbs
	{ID: "14-A1", Competency: "Modal Verbs", Level: LevelA1, CorrectAnswer: 1,
		Text:    "'___ I open the window?' — asking for permission.",
		Options: []string{"Must", "May", "Would", "Should"}},
	{ID: "14-A2", Competency: "Modal Verbs", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'You ___ wear a seatbelt. It's the law.'",
		Options: []string{"must", "might", "could", "would"}},
	{ID: "14-B1", Competency: "Modal Verbs", Level: LevelB1, CorrectAnswer: 2,
		Text:    "'You ___ have told me you were coming — I would have cooked more.'",
		Options: []string{"must", "can't", "should", "needn't"}},
	{ID: "14-B2", Competency: "Modal Verbs", Level: LevelB2, CorrectAnswer: 3,
		Text:    "'She ___ be stuck in traffic; she's usually punctual.' Expressing a deduction:",
		Options: []string{"should", "ought", "would", "must"}},
	{ID: "14-C1", Competency: "Modal Verbs", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'You needn't have brought a gift' means the gift:",
		Options: []string{"was brought but not necessary", "was necessary", "was not brought", "was forgotten"}},
	{ID: "14-C2", Competency: "Modal Verbs", Level: LevelC2, CorrectAnswer: 2,
		Text:    "'Be that as it may, the decision stands.' The phrase concedes a point while:",
		Options: []string{"reversing the decision", "requesting clarification", "maintaining the original position", "apologizing"}},

	// 15. Conditionals
	{ID: "15-A1", Competency: "Conditionals", Level: LevelA1, CorrectAnswer: 3,
		Text:    "'If it rains, we ___ at home.'",
		Options: []string{"stayed", "staying", "to stay", "will stay"}},
	{ID: "15-A2", Competency: "Conditionals", Level: LevelA2, CorrectAnswer: 1,
		Text:    "'If I ___ rich, I would travel the world.'",
		Options: []string{"am", "were", "will be", "have been"}},
	{ID: "15-B1", Competency: "Conditionals", Level: LevelB1, CorrectAnswer: 0,
		Text:    "'If you had studied, you ___ the exam.'",
		Options: []string{"would have passed", "will pass", "would pass", "passed"}},
	{ID: "15-B2", Competency: "Conditionals", Level: LevelB2, CorrectAnswer: 2,
		Text:    "'___ you change your mind, give me a call.' — formal conditional:",
		Options: []string{"If only", "Unless", "Should", "Provided"}},
	{ID: "15-C1", Competency: "Conditionals", Level: LevelC1, CorrectAnswer: 1,
		Text:    "'Had it not been for her quick thinking, the deal ___.'",
		Options: []string{"would collapse", "would have collapsed", "will have collapsed", "had collapsed"}},
	{ID: "15-C2", Competency: "Conditionals", Level: LevelC2, CorrectAnswer: 3,
		Text:    "'Were the merger to proceed, shareholders ___ notified forthwith.'",
		Options: []string{"will be", "are", "have been", "would be"}},

	// 16. Passive Voice
	{ID: "16-A1", Competency: "Passive Voice", Level: LevelA1, CorrectAnswer: 2,
		Text:    "'English ___ in many countries.'",
		Options: []string{"speaks", "is speak", "is spoken", "speaking"}},
	{ID: "16-A2", Competency: "Passive Voice", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'The letter ___ yesterday.'",
		Options: []string{"was sent", "is sent", "sent", "has sent"}},
	{ID: "16-B1", Competency: "Passive Voice", Level: LevelB1, CorrectAnswer: 1,
		Text:    "'The bridge ___ at the moment, so the road is closed.'",
		Options: []string{"is repaired", "is being repaired", "has repaired", "repairs"}},
	{ID: "16-B2", Competency: "Passive Voice", Level: LevelB2, CorrectAnswer: 3,
		Text:    "'He ___ to be the best candidate' — impersonal passive:",
		Options: []string{"says", "is saying", "said", "is said"}},
	{ID: "16-C1", Competency: "Passive Voice", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'The findings ___ scrutiny before publication.' — formal register:",
		Options: []string{"were subjected to", "got", "had", "did"}},
	{ID: "16-C2", Competency: "Passive Voice", Level: LevelC2, CorrectAnswer: 2,
		Text:    "'It is widely held that the policy failed.' The construction serves to:",
		Options: []string{"name the critics", "emphasize the policy's success", "report an opinion without attributing it", "soften a personal attack"}},

	// 17. Reported Speech
	{ID: "17-A1", Competency: "Reported Speech", Level: LevelA1, CorrectAnswer: 1,
		Text:    "Tom said: 'I am tired.' → Tom said he ___ tired.",
		Options: []string{"is", "was", "be", "were being"}},
	{ID: "17-A2", Competency: "Reported Speech", Level: LevelA2, CorrectAnswer: 3,
		Text:    "'Where do you live?' she asked. → She asked me where ___.",
		Options: []string{"do I live", "did I live", "do you live", "I lived"}},
	{ID: "17-C1", Competency: "Reported Speech", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'She denied ___ the document.'",
		Options: []string{"having seen", "to see", "that see", "to have been seen"}},
	{ID: "17-C2", Competency: "Reported Speech", Level: LevelC2, CorrectAnswer: 2,
		Text:    "Which reporting verb best conveys reluctant admission?",
		Options: []string{"announced", "insisted", "conceded", "recounted"}},

	// 18. Articles and Determiners
	{ID: "18-A1", Competency: "Articles and Determiners", Level: LevelA1, CorrectAnswer: 0,
		Text:    "'I saw ___ elephant at the zoo.'",
		Options: []string{"an", "a", "the", "some"}},
	{ID: "18-A2", Competency: "Articles and Determiners", Level: LevelA2, CorrectAnswer: 2,
		Text:    "'Could I have ___ water, please?'",
		Options: []string{"a", "an", "some", "many"}},
	{ID: "18-C1", Competency: "Articles and Determiners", Level: LevelC1, CorrectAnswer: 1,
		Text:    "'___ unemployed face particular challenges.' — referring to the group as a whole:",
		Options: []string{"An", "The", "Some", "Every"}},
	{ID: "18-C2", Competency: "Articles and Determiners", Level: LevelC2, CorrectAnswer: 3,
		Text:    "In 'a Mr Harding called for you', the article implies the caller is:",
		Options: []string{"important", "well known to the speaker", "expected", "unknown to the speaker"}},

	// 19. Prepositions
	{ID: "19-A1", Competency: "Prepositions", Level: LevelA1, CorrectAnswer: 1,
		Text:    "'The book is ___ the table.'",
		Options: []string{"in", "on", "at", "of"}},
	{ID: "19-A2", Competency: "Prepositions", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'We arrived ___ the airport two hours early.'",
		Options: []string{"at", "on", "to", "by"}},
	{ID: "19-C1", Competency: "Prepositions", Level: LevelC1, CorrectAnswer: 2,
		Text:    "'The outcome hinges ___ the committee's approval.'",
		Options: []string{"at", "with", "on", "for"}},
	{ID: "19-C2", Competency: "Prepositions", Level: LevelC2, CorrectAnswer: 1,
		Text:    "'___ the terms of the agreement, royalties accrue quarterly.'",
		Options: []string{"Against", "Under", "Beneath", "Along"}},

	// 20. Phrasal Verbs
	{ID: "20-A1", Competency: "Phrasal Verbs", Level: LevelA1, CorrectAnswer: 3,
		Text:    "'Please ___ your shoes before entering.'",
		Options: []string{"take up", "take over", "take in", "take off"}},
	{ID: "20-A2", Competency: "Phrasal Verbs", Level: LevelA2, CorrectAnswer: 1,
		Text:    "'The plane ___ on time.'",
		Options: []string{"took off it", "took off", "took it off", "off took"}},
	{ID: "20-C1", Competency: "Phrasal Verbs", Level: LevelC1, CorrectAnswer: 0,
		Text:    "'Talks broke down after the first session' means the talks:",
		Options: []string{"collapsed", "intensified", "were postponed", "concluded successfully"}},
	{ID: "20-C2", Competency: "Phrasal Verbs", Level: LevelC2, CorrectAnswer: 2,
		Text:    "'She papers over the cracks in every report.' She:",
		Options: []string{"corrects errors thoroughly", "redesigns the layout", "hides problems superficially", "removes redundant sections"}},

	// 21. Idiomatic Expressions
	{ID: "21-A1", Competency: "Idiomatic Expressions", Level: LevelA1, CorrectAnswer: 2,
		Text:    "'Break a leg!' is said to wish someone:",
		Options: []string{"a safe trip", "a quick recovery", "good luck", "a nice meal"}},
	{ID: "21-A2", Competency: "Idiomatic Expressions", Level: LevelA2, CorrectAnswer: 0,
		Text:    "'It's raining cats and dogs' means it is raining:",
		Options: []string{"very heavily", "lightly", "with hail", "unexpectedly"}},
	{ID: "21-C1", Competency: "Idiomatic Expressions", Level: LevelC1, CorrectAnswer: 3,
		Text:    "'The new manager is a breath of fresh air.' The manager is:",
		Options: []string{"inexperienced", "strict", "temporary", "a welcome change"}},
	{ID: "21-C2", Competency: "Idiomatic Expressions", Level: LevelC2, CorrectAnswer: 1,
		Text:    "'He threw the baby out with the bathwater' means he:",
		Options: []string{"acted carelessly with details", "discarded the valuable along with the useless", "started again from scratch", "delegated an unpleasant task"}},

	// 22. Academic Writing
	{ID: "22-A1", Competency: "Academic Writing", Level: LevelA1, CorrectAnswer: 1,
		Text:    "Which word starts a sentence that gives a reason?",
		Options: []string{"But", "Because", "And", "Or"}},
	{ID: "22-A2", Competency: "Academic Writing", Level: LevelA2, CorrectAnswer: 3,
		Text:    "Which linking word shows contrast?",
		Options: []string{"also", "so", "then", "however"}},
	{ID: "22-C1", Competency: "Academic Writing", Level: LevelC1, CorrectAnswer: 0,
		Text:    "Which sentence hedges a claim appropriately for academic prose?",
		Options: []string{"The data suggest a correlation", "The data totally prove it", "Everyone knows this is true", "It is obviously correct"}},
	{ID: "22-C2", Competency: "Academic Writing", Level: LevelC2, CorrectAnswer: 2,
		Text:    "'Notwithstanding the limitations outlined above, ...' signals that the author will:",
		Options: []string{"abandon the argument", "list further limitations", "proceed with the claim despite them", "quote another study"}},
}
