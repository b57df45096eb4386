package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lingua/models"
)

// Seed populates the three beginner reference courses on first run.
// It is safe to call on every startup: when the course table already
// has rows it is a no-op. All inserts run in one transaction, so a
// failure leaves the store without partial course data.
func Seed(db *gorm.DB) error {
	var first models.Course
	err := db.First(&first).Error
	if err == nil {
		log.Println("Database already contains course data. Skipping seed.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Creating initial course data...")

	return db.Transaction(func(tx *gorm.DB) error {
		for _, course := range seedCourses() {
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
		}
		log.Println("Initial course data (Spanish, French, German) created with modules, lessons, and quizzes.")
		return nil
	})
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			Language:           "Spanish",
			Level:              "Beginner",
			Title:              "Spanish for Beginners: Start Speaking Today!",
			Description:        "Embark on your journey to learn Spanish. This course covers basic vocabulary, grammar, and conversational phrases.",
			ImageURL:           "images/spanish_course.png",
			LearningObjectives: "Understand and use familiar everyday expressions and very basic phrases. Introduce yourself and others and can ask and answer questions about personal details such as where you live, people you know and things you have. Interact in a simple way provided the other person talks slowly and clearly.",
			Modules: []models.Module{
				{
					Title:       "Module 1: ¡Hola! Getting Started",
					OrderIndex:  1,
					Description: "Greetings, alphabet, numbers, and basic introductions.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "Greetings and Basic Introductions",
							Content:           "Learn essential Spanish greetings like 'Hola' (Hello), 'Buenos días' (Good morning), 'Buenas tardes' (Good afternoon/evening), and 'Adiós' (Goodbye). Understand how to introduce yourself with 'Me llamo...' (My name is...).",
							VideoURL:          "https://www.youtube.com/embed/t7-nb1wlnyA",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "How do you say 'Hello' in Spanish?",
									Options:       "Adiós,Gracias,Hola,Por favor",
									CorrectAnswer: "Hola",
									QuizType:      models.QuizTypeMultipleChoice,
								},
								{
									Question:      "'Buenos días' is a common greeting in the afternoon. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "False",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "The Spanish Alphabet (El Alfabeto)",
							Content:           "Discover the Spanish alphabet and the pronunciation of each letter. Understand key differences from the English alphabet, such as the letter 'ñ'.",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "The letter 'ñ' is unique to the Spanish alphabet. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "True",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
						{
							LessonNumber:      3,
							Title:             "Numbers 0-20 (Los Números)",
							Content:           "Learn to count from zero to twenty in Spanish. Practice with interactive exercises.",
							EstimatedDuration: "25 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "What is 'cinco' in English?",
									Options:       "Three,Five,Six,Ten",
									CorrectAnswer: "Five",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
					},
				},
				{
					Title:       "Module 2: Everyday Conversations",
					OrderIndex:  2,
					Description: "Learn to talk about yourself, your family, and basic needs.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "Introducing Yourself (Presentarse)",
							Content:           "Learn phrases to introduce yourself, such as 'Me llamo...' (My name is...) and 'Soy de...' (I am from...).",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'Me llamo Juan' means:",
									Options:       "His name is Juan,My name is Juan,Her name is Juan,I like Juan",
									CorrectAnswer: "My name is Juan",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "Asking and Answering Basic Questions",
							Content:           "Practice asking simple questions like '¿Cómo estás?' (How are you?) and '¿De dónde eres?' (Where are you from?).",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "35 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'¿Cómo estás?' is used to ask about someone's age. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "False",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
					},
				},
			},
		},
		{
			Language:           "French",
			Level:              "Beginner",
			Title:              "French for Beginners: Your First Steps in French",
			Description:        "Start your French language adventure. This course covers essential vocabulary, basic grammar, and common conversational phrases for beginners.",
			ImageURL:           "images/french_course.png",
			LearningObjectives: "Understand and use basic French expressions for everyday situations. Introduce yourself, ask simple questions, and understand simple answers. Build a foundation for further French studies.",
			Modules: []models.Module{
				{
					Title:       "Module 1: Bonjour! Getting Started with French",
					OrderIndex:  1,
					Description: "Greetings, the French alphabet, numbers, and basic introductions.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "French Greetings and Politeness",
							Content:           "Learn essential French greetings like 'Bonjour' (Hello/Good day), 'Salut' (Hi), and polite expressions like 'Merci' (Thank you) and 'S'il vous plaît' (Please).",
							EstimatedDuration: "25 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "How do you say 'Thank you' in French?",
									Options:       "Bonjour,Oui,Merci,Au revoir",
									CorrectAnswer: "Merci",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "The French Alphabet and Pronunciation Basics",
							Content:           "Explore the French alphabet and learn the sounds of French letters and common combinations. Pay attention to accents like é, è, ç.",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "The cedilla (ç) changes the pronunciation of 'c' before a, o, u. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "True",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
						{
							LessonNumber:      3,
							Title:             "Counting in French 0-20",
							Content:           "Learn numbers from zero to twenty in French. Practice pronunciation and recognition.",
							EstimatedDuration: "25 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "What is 'dix' in English?",
									Options:       "One,Five,Ten,Twelve",
									CorrectAnswer: "Ten",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
					},
				},
				{
					Title:       "Module 2: Everyday French Conversations",
					OrderIndex:  2,
					Description: "Learn to introduce yourself, talk about your nationality, and ask for simple things.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "Introducing Yourself in French",
							Content:           "Learn phrases like 'Je m'appelle...' (My name is...) and 'Je suis...' (I am...).",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'Je m'appelle Marie' means:",
									Options:       "I like Marie,My name is Marie,Her name is Marie,Where is Marie?",
									CorrectAnswer: "My name is Marie",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "Asking 'How are you?' and Responding",
							Content:           "Learn different ways to ask 'How are you?' (e.g., 'Comment ça va?', 'Comment allez-vous?') and common responses.",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "35 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'Ça va bien' is a positive response to 'Comment ça va?'. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "True",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
					},
				},
			},
		},
		{
			Language:           "German",
			Level:              "Beginner",
			Title:              "German for Absolute Beginners",
			Description:        "Begin your German learning experience. This course introduces basic vocabulary, grammar essentials, and simple conversational phrases.",
			ImageURL:           "images/german_course.png",
			LearningObjectives: "Understand and use very basic German phrases. Introduce yourself and others, ask and answer simple questions about personal details. Interact in a basic way if the other person speaks slowly.",
			Modules: []models.Module{
				{
					Title:       "Module 1: Hallo! Starting with German",
					OrderIndex:  1,
					Description: "Greetings, the German alphabet, numbers, and basic introductions.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "German Greetings and Goodbyes",
							Content:           "Learn common German greetings like 'Hallo' (Hello), 'Guten Tag' (Good day), and farewells like 'Tschüss' (Bye) and 'Auf Wiedersehen' (Goodbye - formal).",
							EstimatedDuration: "25 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "How do you say 'Good day' in German?",
									Options:       "Danke,Bitte,Guten Tag,Ja",
									CorrectAnswer: "Guten Tag",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "The German Alphabet and Umlauts",
							Content:           "Discover the German alphabet, including the special characters ä, ö, ü, and ß. Practice pronunciation.",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "The character 'ß' is called an Eszett or sharp S. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "True",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
						{
							LessonNumber:      3,
							Title:             "Counting in German 0-20",
							Content:           "Learn numbers from zero to twenty in German. Practice with interactive exercises.",
							EstimatedDuration: "25 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "What is 'sieben' in English?",
									Options:       "Six,Seven,Eight,Nine",
									CorrectAnswer: "Seven",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
					},
				},
				{
					Title:       "Module 2: Simple German Conversations",
					OrderIndex:  2,
					Description: "Learn to introduce yourself, state your origin, and ask basic questions.",
					Lessons: []models.Lesson{
						{
							LessonNumber:      1,
							Title:             "Introducing Yourself in German",
							Content:           "Learn phrases such as 'Ich heiße...' (My name is...) and 'Ich komme aus...' (I come from...).",
							EstimatedDuration: "30 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'Ich heiße Anna' means:",
									Options:       "I like Anna,My name is Anna,She is Anna,Anna is here",
									CorrectAnswer: "My name is Anna",
									QuizType:      models.QuizTypeMultipleChoice,
								},
							},
						},
						{
							LessonNumber:      2,
							Title:             "Asking 'How are you?' and Responding in German",
							Content:           "Learn how to ask 'Wie geht es Ihnen?' (How are you? - formal) or 'Wie geht's?' (How are you? - informal) and typical responses.",
							VideoURL:          "https://www.youtube.com/embed/placeholder_video_id",
							EstimatedDuration: "35 mins",
							Quizzes: []models.Quiz{
								{
									Question:      "'Sehr gut' (Very good) is a possible answer to 'Wie geht's?'. (True/False)",
									Options:       "True,False",
									CorrectAnswer: "True",
									QuizType:      models.QuizTypeTrueFalse,
								},
							},
						},
					},
				},
			},
		},
	}
}
