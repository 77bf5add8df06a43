package database

import (
	"thinkquest_backend/internal/model"

	"gorm.io/gorm"
)

// seedCatalog inserts the problem and persona catalog when the tables
// are empty. Running it against a populated database is a no-op.
func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&model.Problem{}).Count(&count)
	if count > 0 {
		return nil
	}

	for i := range defaultProblems {
		if err := db.Create(&defaultProblems[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedQuiz(db *gorm.DB) error {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return nil
	}

	for i := range defaultQuizQuestions {
		if err := db.Create(&defaultQuizQuestions[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

var defaultProblems = []model.Problem{
	{
		Slug:        "load-shedding",
		Title:       "Reduce Load Shedding's Impact on School Learning",
		Description: "As Eskom continues with Stage 2-4 load shedding, schools across SA face disrupted lessons, with no power for lights, computers, or fans during hot summers. In quintile 1 schools, generators are rare due to budget cuts, leading to canceled classes and learners falling behind in STEM subjects.",
		Category:    "High School",
		Tags: []string{
			"Frequent blackouts halting online learning and homework.",
			"Health risks from studying in dark, hot classrooms.",
			"Digital divide: wealthier schools have solar backups, poorer ones rely on candles.",
		},
		Personas: []model.Persona{
			{
				Name:       "Lerato",
				Role:       "Rural Learner",
				Background: "Lerato is a 16-year-old Grade 11 girl from a rural village in Limpopo, where load shedding hits up to 8 hours daily, forcing her to study by candlelight or her phone's torch. She often misses online homework submissions, and the heat from no fans makes focusing impossible. Her family can't afford solar lights, so she shares a single torch with siblings, dreaming of a future in nursing.",
				Goals:      "Wants reliable study time to pass exams.",
				Pains:      "Frustrated by health impacts like eye strain and missed submissions.",
			},
			{
				Name:       "Mr. Dlamini",
				Role:       "Overworked Teacher",
				Background: "Mr. Dlamini, a 45-year-old educator from a KwaZulu-Natal township school, has taught for 20 years but now loses hours to blackouts, scrambling to adapt lessons without projectors or computers. He handles oversized classes of 50+ learners, and power cuts mean no aircon in sweltering heat, causing fatigue for everyone.",
				Goals:      "Seeks efficient teaching tools that survive outages.",
				Pains:      "Concerned about learner equity and rising dropout rates.",
			},
		},
	},
	{
		Slug:        "water-shortages",
		Title:       "Address Water Shortages in School Facilities",
		Description: "Ongoing droughts and infrastructure failures leave schools without running water for days, forcing learners to share buckets or go home early. Quintile 1-3 schools in townships face hygiene issues, increasing absenteeism from illnesses.",
		Category:    "High School",
		Tags: []string{
			"Health risks from poor sanitation, leading to outbreaks in affected areas.",
			"Gender impacts: girls miss school during periods due to no water for hygiene.",
			"Resource strain: teachers buy bottled water, stretching tight budgets.",
		},
		Personas: []model.Persona{
			{
				Name:       "Naledi",
				Role:       "Hygiene-Concerned Learner",
				Background: "Naledi, a 15-year-old Grade 9 girl from an Eastern Cape rural school, faces daily hygiene struggles as droughts leave taps dry, forcing her to skip drinks to avoid dirty toilets. Her school relies on communal buckets, leading to illnesses that keep her home for days.",
				Goals:      "Prioritizes clean facilities and safe drinking water.",
				Pains:      "Frustrated by disease risks and days of school missed.",
			},
			{
				Name:       "Siphiwe",
				Role:       "School Janitor",
				Background: "Siphiwe, a 38-year-old worker in a Johannesburg township school, spends hours fetching water from distant taps during shortages, delaying cleaning and exposing kids to unsanitary conditions. As a father, he's motivated to advocate for better infrastructure but lacks support from overstrained school admins.",
				Goals:      "Wants efficient tools and reliable supply.",
				Pains:      "Concerned about community health and his own workload.",
			},
		},
	},
	{
		Slug:        "commute-safety",
		Title:       "Improve Safety During School Commutes",
		Description: "With rising crime rates, learners face dangers walking or using minibus taxis to school. Rural kids trek long distances on unsafe roads, while urban ones deal with overcrowded transport.",
		Category:    "High School",
		Tags: []string{
			"High crime in townships, with many learners reporting theft or harassment.",
			"Transport costs eating into family budgets, leading to skipped school days.",
			"Weather extremes making walks riskier in rural areas.",
		},
		Personas: []model.Persona{
			{
				Name:       "Bongani",
				Role:       "Taxi Rider",
				Background: "Bongani, a 17-year-old Grade 12 boy from Alexandra in Gauteng, takes overcrowded minibus taxis daily, witnessing fights and robberies. He arrives stressed, impacting his focus on matric exams, and walks the last kilometre in the dark fearing gangs.",
				Goals:      "Seeks a reliable and safe way to get to school.",
				Pains:      "Worried about exam prep suffering from commute stress.",
			},
			{
				Name:       "Nomvula",
				Role:       "Long-Walk Learner",
				Background: "Nomvula, a 15-year-old Grade 10 girl from a rural Free State village, walks 7km on unpaved roads, facing harassment and wildlife risks, especially during flood seasons. She leaves home at dawn, arriving tired and sometimes missing class due to bad weather.",
				Goals:      "Wants secure paths and scholar transport.",
				Pains:      "Concerned about gender safety on the long walk.",
			},
		},
	},
	{
		Slug:        "language-barriers",
		Title:       "Bridge Language Barriers in Multilingual Classes",
		Description: "SA's official languages create confusion in classrooms, with English-medium teaching leaving non-native speakers behind, especially in diverse urban schools. Rural areas lack indigenous language materials.",
		Category:    "High School",
		Tags: []string{
			"Many learners struggle with English proficiency, affecting exam performance.",
			"Teacher shortages in indigenous languages, leading to code-switching chaos.",
			"Digital tools unavailable in low-resource schools.",
		},
		Personas: []model.Persona{
			{
				Name:       "Fatima",
				Role:       "English Learner",
				Background: "Fatima, a 16-year-old Grade 11 girl from Cape Town, struggles with technical terms in science, as English-medium teaching leaves her behind despite her home language. Code-switching in diverse classes confuses her, leading to lower grades and anxiety about university.",
				Goals:      "Wants lessons she can follow without translation gaps.",
				Pains:      "Concerned about exams and the 'slow learner' stigma.",
			},
			{
				Name:       "Ms. Nkosi",
				Role:       "Multilingual Teacher",
				Background: "Ms. Nkosi, a 48-year-old teacher in the Eastern Cape, juggles five languages in overcrowded rooms with no specialist support. She sees kids fail due to confusion and pushes for reforms but lacks resources.",
				Goals:      "Wants tools that reach every learner.",
				Pains:      "Alarmed by the widening proficiency gaps.",
			},
		},
	},
	{
		Slug:        "youth-unemployment",
		Title:       "Tackle Youth Unemployment Through School Skills Programs",
		Description: "With youth unemployment at record levels, schools fail to prepare learners for jobs, focusing on academics over vocational skills like coding or entrepreneurship. Limited apprenticeships leave matrics jobless.",
		Category:    "High School",
		Tags: []string{
			"Mismatch between curriculum and job market needs.",
			"High dropout rates due to economic pressures on families.",
			"Limited career guidance in under-resourced schools.",
		},
		Personas: []model.Persona{
			{
				Name:       "Thandi",
				Role:       "Aspiring Entrepreneur",
				Background: "Thandi, a 17-year-old Grade 12 girl from Khayelitsha, dreams of starting a hair braiding business but finds school focused on theory, not practical skills like marketing or finance. With family relying on social grants, she needs better school integration to avoid post-matric joblessness.",
				Goals:      "Wants practical business skills before matric.",
				Pains:      "Frustrated by the gap between curriculum and real work.",
			},
			{
				Name:       "Sizwe",
				Role:       "Dropout Risk",
				Background: "Sizwe, a 16-year-old Grade 11 boy from a Joburg township, faces pressure to drop out for low-wage work, with curriculum mismatches leaving him unskilled for trades like plumbing. His single mother struggles, and he sees peers in gangs.",
				Goals:      "Seeks employability through vocational training.",
				Pains:      "Worried about the poverty cycle pulling him out of school.",
			},
		},
	},
	{
		Slug:        "bullying",
		Title:       "Combat Bullying in Diverse School Environments",
		Description: "Bullying spikes in schools due to cultural, racial, and economic differences. Cyberbullying via messaging apps adds to mental health issues, and rural schools lack support programs.",
		Category:    "High School",
		Tags: []string{
			"Racial tensions in formerly segregated schools.",
			"Mental health stigma preventing reporting.",
			"Limited counselor access in poor areas.",
		},
		Personas: []model.Persona{
			{
				Name:       "Aisha",
				Role:       "Targeted Learner",
				Background: "Aisha, a 15-year-old Grade 10 girl from the Cape Flats, endures cyberbullying in WhatsApp groups, often tied to religious dress or accents. This leads to isolation and anxiety, and missed school days.",
				Goals:      "Seeks acceptance and a safe way to report abuse.",
				Pains:      "Concerned about her mental health and falling behind.",
			},
			{
				Name:       "Kabelo",
				Role:       "Bystander",
				Background: "Kabelo, a 16-year-old Grade 11 boy from Soweto, witnesses physical fights and verbal abuse in overcrowded classes. He wants to intervene but fears retaliation, affected by his own past as a newcomer.",
				Goals:      "Wants a peaceful class and a way to help safely.",
				Pains:      "Frustrated by the silence around incidents.",
			},
		},
	},
	{
		Slug:        "mental-health",
		Title:       "Enhance Mental Health Support in Schools",
		Description: "Mental health crises persist, with learners facing anxiety from exam pressure, family poverty, and violence. Some schools have one counselor per 500 kids, and stigma prevents help-seeking.",
		Category:    "High School",
		Tags: []string{
			"High suicide rates among youth.",
			"Limited access to therapy in rural areas.",
			"Integration with curriculum without overload.",
		},
		Personas: []model.Persona{
			{
				Name:       "Sindi",
				Role:       "Anxious Student",
				Background: "Sindi, a 16-year-old Grade 11 girl from Durban, battles exam anxiety, with economic pressures adding family stress. Her school has limited counselors, so she hides her feelings due to stigma.",
				Goals:      "Seeks relief and someone to talk to.",
				Pains:      "Concerned her performance will collapse under the pressure.",
			},
			{
				Name:       "Ms. Mokoena",
				Role:       "School Counselor",
				Background: "Ms. Mokoena, a 45-year-old counselor in Mpumalanga, sees burnout rise with one counselor per 500 kids, handling economic-driven anxiety but overwhelmed by caseloads and lack of training.",
				Goals:      "Wants to reach every learner who needs help.",
				Pains:      "Alarmed by the gaps in rural access.",
			},
		},
	},
	{
		Slug:        "inclusive-education",
		Title:       "Promote Inclusive Education for Disabled Learners",
		Description: "Despite inclusive policies, disabled learners in mainstream schools lack ramps, sign language teachers, or braille materials. In rural areas, transport is a barrier, and stigma persists.",
		Category:    "High School",
		Tags: []string{
			"Most disabled kids out of school due to access issues.",
			"Teacher training gaps in special needs.",
			"Budget cuts limiting assistive tech.",
		},
		Personas: []model.Persona{
			{
				Name:       "Thato",
				Role:       "Wheelchair User",
				Background: "Thato, a 15-year-old Grade 10 boy from Bloemfontein, navigates ramp-less schools. His polio limits mobility, missing classes on upper floors, and stigma from peers adds emotional strain.",
				Goals:      "Seeks access to every classroom.",
				Pains:      "Frustrated by physical barriers and exclusion.",
			},
			{
				Name:       "Zinhle",
				Role:       "Hearing-Impaired Learner",
				Background: "Zinhle, a 16-year-old Grade 11 girl from the Eastern Cape, relies on lip-reading but struggles in noisy classes without sign language teachers. Rural isolation means no aids, affecting her social life and grades.",
				Goals:      "Wants inclusion in discussions and lessons.",
				Pains:      "Concerned about isolation from her classmates.",
			},
		},
	},
}

var defaultQuizQuestions = []model.QuizQuestion{
	{
		Position: 1,
		Question: "Your team needs to understand why students hit the snooze button. Which research method will give you the deepest qualitative insight?",
		Options: []string{
			"a) Creating a Google Form survey asking 'How many times do you hit snooze?' sent to the whole school.",
			"b) Interviewing 5 students and asking them to walk you through their morning routine step-by-step.",
			"c) Researching sleep cycles and circadian rhythms online.",
			"d) Asking the school nurse for data on late arrivals.",
		},
		Answer:    1,
		Rationale: "Design thinking relies on 'Why,' not 'How many.' Surveys give numbers; interviews give stories and emotions, which are necessary for empathy.",
	},
	{
		Position: 2,
		Question: "You are interviewing a student named Marcus. You want to know about his phone usage at night. Which of these is a BIASED (leading) question that you should AVOID?",
		Options: []string{
			"a) 'Walk me through the last hour before you went to sleep.'",
			"b) 'Where do you keep your phone while you sleep?'",
			"c) 'Don't you think using your phone at night is ruining your sleep?'",
			"d) 'How do you feel when you wake up and see notifications?'",
		},
		Answer:    2,
		Rationale: "Option C imposes your opinion ('ruining your sleep') onto the user. Good research questions are neutral and open-ended.",
	},
	{
		Position: 3,
		Question: "Marcus tells you, 'I'm always tired.' You use the '5 Whys' technique to dig deeper. Which sequence represents the correct use of this tool?",
		Options: []string{
			"a) Ask him 'Why?' five times rapidly to stress him out.",
			"b) Ask 'Why are you tired?' -> 'Why do you stay up late?' -> 'Why are you on your phone?' -> 'Why do you fear missing out?' -> 'Why is social connection your priority?'",
			"c) Ask 'Why?' five times about five different unrelated topics.",
			"d) Ask him 'Why don't you just go to bed earlier?' five times.",
		},
		Answer:    1,
		Rationale: "The 5 Whys technique is about drilling down into a single problem to find the root cause (emotional/belief based) rather than the symptom (tiredness).",
	},
	{
		Position: 4,
		Question: "You observe that students who eat breakfast seem happier. You write down: 'Students who don't eat breakfast are lazy.' What is wrong with this note?",
		Options: []string{
			"a) It is a fact, not an opinion.",
			"b) It is a judgment/assumption, not an observation.",
			"c) It is too long.",
			"d) It is a good insight.",
		},
		Answer:    1,
		Rationale: "'Lazy' is a judgment. An observation would be 'Student put head on desk.' Empathy requires suspending judgment.",
	},
	{
		Position: 5,
		Question: "You need to write a Problem Statement (Point of View) for Marcus. Which of these follows the correct 'User + Need + Insight' structure?",
		Options: []string{
			"a) 'We need to invent a vibrating pillow alarm.'",
			"b) 'High schools should start at 10:00 AM so kids can sleep.'",
			"c) 'Marcus needs a way to disconnect from his social life at night without feeling lonely, because his FOMO (Fear Of Missing Out) keeps him awake.'",
			"d) 'Teenagers need more sleep because science says they need 9 hours.'",
		},
		Answer:    2,
		Rationale: "This is the only option that combines a specific user, a verb (need), and the deep reason why ('Insight'). Option A is a solution, B is a policy, D is a fact.",
	},
	{
		Position: 6,
		Question: "Your teammate suggests this Problem Statement: 'How might we build an app that locks Marcus's phone?' Why is this a WEAK statement?",
		Options: []string{
			"a) It is too specific.",
			"b) It focuses on the user.",
			"c) It embeds the solution (an app) into the problem, restricting creativity.",
			"d) It is too emotional.",
		},
		Answer:    2,
		Rationale: "If you include 'an app' in the problem statement, you stop yourself from inventing non-app solutions (like a vibrating watch or a smart light).",
	},
	{
		Position: 7,
		Question: "You have grouped your sticky notes on a wall. You see a cluster of notes about 'Cold floors,' 'Dark rooms,' and 'Annoying buzzers.' You need to name this cluster with an INSIGHT. What is the best name?",
		Options: []string{
			"a) 'Physical Environment.'",
			"b) 'Bad Things.'",
			"c) 'The environment of the bedroom feels hostile in the morning.'",
			"d) 'Room Temperature.'",
		},
		Answer:    2,
		Rationale: "Insights interpret the data. Options A and B are just categories (labels). Option C explains the meaning of the data (the hostility of the environment).",
	},
	{
		Position: 8,
		Question: "Why do we create a 'Persona' (like Marcus) instead of designing for 'All Teenagers'?",
		Options: []string{
			"a) Because it is easier to draw one person.",
			"b) Because if you design for everyone, you design for no one. Specificity creates better solutions.",
			"c) Because we only have budget for one user.",
			"d) Because Marcus is a real person.",
		},
		Answer:    1,
		Rationale: "This is a core design paradox: designing for one specific person often creates a better solution for many than designing a generic solution for 'everyone.'",
	},
	{
		Position: 9,
		Question: "You are ready to brainstorm. You want to turn your Problem Statement into a 'How Might We' (HMW) question. Which represents the 'Goldilocks Zone' (not too broad, not too narrow)?",
		Options: []string{
			"a) 'HMW fix mornings?' (Too Broad)",
			"b) 'HMW make the alarm button blue?' (Too Narrow)",
			"c) 'HMW make the transition from sleep to wakefulness feel like an accomplishment?' (Just Right)",
			"d) 'HMW force Marcus to wake up?' (Too Aggressive)",
		},
		Answer:    2,
		Rationale: "Option C allows for many types of solutions (lights, sounds, games, smells) without being too broad to solve.",
	},
	{
		Position: 10,
		Question: "During brainstorming, a teammate suggests: 'Let's make a bed that ejects the student out the window!' What is the Design Thinking response?",
		Options: []string{
			"a) 'That is dangerous and illegal. No.'",
			"b) 'Yes, and... maybe it could gently slide them onto the floor instead.'",
			"c) 'Let's stay realistic, please.'",
			"d) 'Write that down on the 'Bad Ideas' list.'",
		},
		Answer:    1,
		Rationale: "In brainstorming, you never say 'No.' You build on ideas. A bed that ejects you is dangerous, but it might lead to an idea about a bed that slowly raises the mattress to sit you up.",
	},
	{
		Position: 11,
		Question: "You have 50 ideas on the board. You need to narrow them down (Converge). Which method should you use?",
		Options: []string{
			"a) Rock-Paper-Scissors.",
			"b) The loudest person decides.",
			"c) Dot Voting (Heat mapping) to see where the team's energy is.",
			"d) Choose the cheapest one.",
		},
		Answer:    2,
		Rationale: "This is a democratic, visual way to see where the team's collective enthusiasm lies, acting as a heat map for the best ideas.",
	},
	{
		Position: 12,
		Question: "One of your ideas is a 'Breakfast Drone.' You want to use the SCAMPER technique to improve it. You choose 'S' (Substitute). What does that look like?",
		Options: []string{
			"a) Substitute the drone for a rolling robot dog that brings toast.",
			"b) Combine the drone with the alarm clock.",
			"c) Eliminate the breakfast.",
			"d) Reverse the drone so it flies backward.",
		},
		Answer:    0,
		Rationale: "SCAMPER stands for Substitute, Combine, Adapt, Modify, Put to another use, Eliminate, Reverse. Replacing the drone with a robot dog is a substitution.",
	},
	{
		Position: 13,
		Question: "The team wants to prototype an app that pairs students with 'Morning Buddies.' What is the best LOW-FIDELITY way to start?",
		Options: []string{
			"a) Hire a coder to build the beta version.",
			"b) Spend 3 weeks on Photoshop designing the logo.",
			"c) Sketch the 5 main screens on index cards and have a student tap through them.",
			"d) 3D print a phone case for the app.",
		},
		Answer:    2,
		Rationale: "Low fidelity is about speed. Code and Photoshop take too long for the first test.",
	},
	{
		Position: 14,
		Question: "You want to test a 'Smart Mirror' that displays the weather. Instead of building a real smart mirror, you put an iPad behind a piece of one-way glass to fake it. What is this technique called?",
		Options: []string{
			"a) The Wizard of Oz (Faking the functionality).",
			"b) The Pinocchio Effect.",
			"c) High-Fidelity Coding.",
			"d) Fraud.",
		},
		Answer:    0,
		Rationale: "This technique involves a human (or simple tech) behind the scenes simulating a complex machine to test if the user wants the function before building the code.",
	},
	{
		Position: 15,
		Question: "Why are you building this prototype?",
		Options: []string{
			"a) To impress the teacher.",
			"b) To have a finished product to sell.",
			"c) To answer a specific question: 'Will students actually engage with this feature?'",
			"d) To patent the idea.",
		},
		Answer:    2,
		Rationale: "We do not build to sell or impress; in Design Thinking, we build to learn. The prototype is a question made physical.",
	},
	{
		Position: 16,
		Question: "Your prototype fails immediately, the paper rips and the user is confused. Is this a failure?",
		Options: []string{
			"a) Yes, you should get an F.",
			"b) No, this is 'Failing Fast.' You saved months of work by learning this now on paper.",
			"c) Yes, you should have used better paper.",
			"d) No, the user just used it wrong.",
		},
		Answer:    1,
		Rationale: "A failure in the prototype phase is a success for the process. It saves money and time.",
	},
	{
		Position: 17,
		Question: "You are handing your 'Morning Buddy App' paper prototype to Marcus to test. What do you say?",
		Options: []string{
			"a) 'This is a buddy app. Click here to find a friend.'",
			"b) 'We worked really hard on this, so please be nice.'",
			"c) 'Please use this app to find a wake-up partner. Please think out loud as you go.'",
			"d) 'Do you like it?'",
		},
		Answer:    2,
		Rationale: "You set the scene ('find a partner') and ask for 'Think Aloud,' but you do not explain how to use the UI (Option A) or bias them by asking for kindness (Option B).",
	},
	{
		Position: 18,
		Question: "Marcus looks at the 'Connect' button and frowns. He pauses for a long time. What do you do?",
		Options: []string{
			"a) Explain, 'That's the connect button, go ahead and press it.'",
			"b) Stay silent and observe his struggle. Later, ask 'What was confusing there?'",
			"c) Apologize for the bad drawing.",
			"d) Take the prototype back and fix it immediately.",
		},
		Answer:    1,
		Rationale: "If you explain how to use it, you ruin the test. You need to see if the design explains itself.",
	},
	{
		Position: 19,
		Question: "Marcus says, 'I would never use this. I don't want to talk to people in the morning. I hate people in the morning.' What does this mean for your project?",
		Options: []string{
			"a) The project is over.",
			"b) You need to force him to like it.",
			"c) You have uncovered a critical insight. You must pivot back to the Ideate or Define phase (maybe he needs a non-social motivator).",
			"d) Marcus is just grumpy.",
		},
		Answer:    2,
		Rationale: "Design Thinking is non-linear. If the premise is wrong (he hates people in the morning), you must go back and change the solution to fit the user's reality.",
	},
	{
		Position: 20,
		Question: "You finished the test. You have a grid with four quadrants: '+' (Likes), ' ' (Wishes), '?' (Questions), and '' (Ideas). What is this tool called?",
		Options: []string{
			"a) The Feedback Capture Grid.",
			"b) The Final Exam.",
			"c) The SWOT Analysis.",
			"d) The Scorecard.",
		},
		Answer:    0,
		Rationale: "This is the standard tool for organizing user testing feedback into actionable categories.",
	},
}
