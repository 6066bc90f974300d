package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		"app.title":    "Timesdrill",
		"app.subtitle": "Multiplication tables practice",

		"app.too_small":  "Terminal too small!\n\nPlease resize to at least %d x %d\n\nCurrent: %d x %d",
		"home.title":     "Home",
		"quiz.title":     "Quiz",
		"quiz.no_answer": "No answer",

		"history.loading":      "Loading history...",
		"history.no_answers":   "No answers recorded.",
		"history.answer_right": "%s  %d ✓",
		"history.answer_wrong": "%s  %s ✗  (%d)",

		"keys.back":       "Back",
		"keys.quit":       "Quit",
		"keys.navigate":   "Navigate",
		"keys.select":     "Select",
		"keys.toggle":     "Toggle",
		"keys.move":       "Move",
		"keys.next_field": "Next field",
		"keys.start":      "Start",
		"keys.answer":     "Answer",
		"keys.continue":   "Continue",
		"keys.yes":        "Yes",
		"keys.no":         "No",
		"keys.home":       "Home",
		"keys.retry":      "Try again",
		"keys.history":    "History",
		"keys.details":    "Details",
		"keys.cancel":     "Cancel",

		"home.best":      "Best score",
		"home.avg":       "Average time",
		"home.none":      "-",
		"home.start":     "Start quiz",
		"home.history":   "History",
		"home.exit":      "Exit",
		"home.avg_value": "%ds",
		"home.pct_value": "%d%%",

		"setup.title":      "New quiz",
		"setup.numbers":    "Tables to practise",
		"setup.count":      "Number of questions",
		"setup.level":      "Level",
		"setup.start":      "Start",
		"setup.count_hint": "1-100",

		"level.easy":   "Easy",
		"level.medium": "Medium",
		"level.hard":   "Hard",

		"err.invalid_input": "Pick at least one number and a question count between 1 and 100.",
		"err.exhausted":     "Could not build %d different questions from these numbers. Pick more numbers or fewer questions.",
		"err.timeout":       "Building the quiz took too long. Pick more numbers or fewer questions.",
		"err.store":         "Your results could not be saved.",

		"quiz.generating":   "Preparing questions... %d/%d",
		"quiz.progress":     "Question %d of %d",
		"quiz.remaining":    "%ds",
		"quiz.streak":       "%d in a row!",
		"quiz.correct":      "Correct!",
		"quiz.wrong":        "Not quite. %d × %d = %d",
		"quiz.timeout":      "Time's up! %d × %d = %d",
		"quiz.continue":     "Press enter to continue",
		"quiz.quit_confirm": "Quit this quiz? (y/n)",

		"summary.title":      "Results",
		"summary.score":      "Score: %d%%",
		"summary.level":      "Difficulty level: %s",
		"summary.time_per":   "Time per question: %d seconds",
		"summary.taken":      "Time taken: %d seconds",
		"summary.avg":        "Average response time: %d seconds per question",
		"summary.correct":    "Correct answers: %d out of %d",
		"summary.streak":     "Longest streak: %d correct in a row",
		"summary.mistakes":   "Mistakes",
		"summary.by_base":    "By table",
		"summary.base_row":   "%d×: %d/%d",
		"summary.no_mistake": "No mistakes. Well done!",

		"grade.excellent": "Excellent!",
		"grade.good":      "Good",
		"grade.fair":      "Fair",
		"grade.failed":    "Failed",

		"category.no-answer":     "No answer",
		"category.careless":      "Careless slips",
		"category.speed-rush":    "Answered too fast",
		"category.misconception": "Misconceptions",
		"category.unclassified":  "Other",

		"hint.mul-skip-count-off": "That is one group too many or too few. Count the groups again.",
		"hint.mul-wrong-table":    "That answer belongs to the next table over. Check which table you are in.",
		"hint.mul-added":          "The numbers were added. Multiplying means repeated adding.",
		"hint.mul-subtracted":     "The numbers were subtracted. Multiply them instead.",
		"hint.mul-digits-swapped": "The digits are the right ones but in the wrong order.",

		"history.title":  "History",
		"history.empty":  "No quizzes yet.",
		"history.header": "Date              Level   Score  Grade",
		"history.row":    "%s  %-6s  %3d%%   %s",

		"cli.stats.best":     "Best score: %s",
		"cli.stats.avg":      "Average response time: %s",
		"cli.reset.confirm":  "Delete all statistics and history? (y/N) ",
		"cli.reset.done":     "Statistics and history cleared.",
		"cli.reset.aborted":  "Nothing deleted.",
		"cli.generate.saved": "Wrote %d questions to %s",

		"worksheet.title":      "Multiplication worksheet",
		"worksheet.questions":  "Questions",
		"worksheet.answer_key": "Answer key",
		"worksheet.number":     "#",
		"worksheet.question":   "Question",
		"worksheet.options":    "Options",
		"worksheet.answer":     "Answer",
	},
	language.Spanish: {
		"app.title":    "Timesdrill",
		"app.subtitle": "Práctica de las tablas de multiplicar",

		"app.too_small":  "¡Terminal demasiado pequeña!\n\nAmplíala al menos a %d x %d\n\nActual: %d x %d",
		"home.title":     "Inicio",
		"quiz.title":     "Cuestionario",
		"quiz.no_answer": "Sin respuesta",

		"history.loading":      "Cargando historial...",
		"history.no_answers":   "No hay respuestas guardadas.",
		"history.answer_right": "%s  %d ✓",
		"history.answer_wrong": "%s  %s ✗  (%d)",

		"keys.back":       "Volver",
		"keys.quit":       "Salir",
		"keys.navigate":   "Navegar",
		"keys.select":     "Elegir",
		"keys.toggle":     "Marcar",
		"keys.move":       "Mover",
		"keys.next_field": "Siguiente campo",
		"keys.start":      "Empezar",
		"keys.answer":     "Responder",
		"keys.continue":   "Continuar",
		"keys.yes":        "Sí",
		"keys.no":         "No",
		"keys.home":       "Inicio",
		"keys.retry":      "Repetir",
		"keys.history":    "Historial",
		"keys.details":    "Detalles",
		"keys.cancel":     "Cancelar",

		"home.best":      "Mejor puntuación",
		"home.avg":       "Tiempo medio",
		"home.none":      "-",
		"home.start":     "Empezar",
		"home.history":   "Historial",
		"home.exit":      "Salir",
		"home.avg_value": "%ds",
		"home.pct_value": "%d%%",

		"setup.title":      "Nuevo cuestionario",
		"setup.numbers":    "Tablas a practicar",
		"setup.count":      "Número de preguntas",
		"setup.level":      "Nivel",
		"setup.start":      "Empezar",
		"setup.count_hint": "1-100",

		"level.easy":   "Fácil",
		"level.medium": "Medio",
		"level.hard":   "Difícil",

		"err.invalid_input": "Elige al menos un número y entre 1 y 100 preguntas.",
		"err.exhausted":     "No se pueden crear %d preguntas distintas con estos números. Elige más números o menos preguntas.",
		"err.timeout":       "Preparar el cuestionario tardó demasiado. Elige más números o menos preguntas.",
		"err.store":         "No se pudieron guardar tus resultados.",

		"quiz.generating":   "Preparando preguntas... %d/%d",
		"quiz.progress":     "Pregunta %d de %d",
		"quiz.remaining":    "%ds",
		"quiz.streak":       "¡%d seguidas!",
		"quiz.correct":      "¡Correcto!",
		"quiz.wrong":        "Casi. %d × %d = %d",
		"quiz.timeout":      "¡Se acabó el tiempo! %d × %d = %d",
		"quiz.continue":     "Pulsa enter para continuar",
		"quiz.quit_confirm": "¿Salir del cuestionario? (s/n)",

		"summary.title":      "Resultados",
		"summary.score":      "Puntuación: %d%%",
		"summary.level":      "Nivel de dificultad: %s",
		"summary.time_per":   "Tiempo por pregunta: %d segundos",
		"summary.taken":      "Tiempo empleado: %d segundos",
		"summary.avg":        "Tiempo medio de respuesta: %d segundos por pregunta",
		"summary.correct":    "Respuestas correctas: %d de %d",
		"summary.streak":     "Mejor racha: %d correctas seguidas",
		"summary.mistakes":   "Errores",
		"summary.by_base":    "Por tabla",
		"summary.base_row":   "%d×: %d/%d",
		"summary.no_mistake": "Sin errores. ¡Muy bien!",

		"grade.excellent": "¡Excelente!",
		"grade.good":      "Bien",
		"grade.fair":      "Suficiente",
		"grade.failed":    "Suspenso",

		"category.no-answer":     "Sin respuesta",
		"category.careless":      "Despistes",
		"category.speed-rush":    "Respuesta demasiado rápida",
		"category.misconception": "Confusiones",
		"category.unclassified":  "Otros",

		"hint.mul-skip-count-off": "Hay un grupo de más o de menos. Vuelve a contar los grupos.",
		"hint.mul-wrong-table":    "Esa respuesta es de la tabla de al lado. Comprueba en qué tabla estás.",
		"hint.mul-added":          "Has sumado los números. Multiplicar es sumar varias veces.",
		"hint.mul-subtracted":     "Has restado los números. Hay que multiplicarlos.",
		"hint.mul-digits-swapped": "Las cifras son correctas pero están al revés.",

		"history.title":  "Historial",
		"history.empty":  "Todavía no hay cuestionarios.",
		"history.header": "Fecha             Nivel   Nota   Resultado",
		"history.row":    "%s  %-6s  %3d%%   %s",

		"cli.stats.best":     "Mejor puntuación: %s",
		"cli.stats.avg":      "Tiempo medio de respuesta: %s",
		"cli.reset.confirm":  "¿Borrar todas las estadísticas y el historial? (s/N) ",
		"cli.reset.done":     "Estadísticas e historial borrados.",
		"cli.reset.aborted":  "No se ha borrado nada.",
		"cli.generate.saved": "Se escribieron %d preguntas en %s",

		"worksheet.title":      "Hoja de multiplicaciones",
		"worksheet.questions":  "Preguntas",
		"worksheet.answer_key": "Soluciones",
		"worksheet.number":     "#",
		"worksheet.question":   "Pregunta",
		"worksheet.options":    "Opciones",
		"worksheet.answer":     "Respuesta",
	},
}
