package lessongen

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are a curriculum designer for a language learning app.

Rules:
- Produce sequential topics that build on each other, numbered from level 1.
- Topics must suit the learner's level. For example "Greetings and Introductions" or "The Alphabet" for beginners, "Complex Tenses" for experts.
- Each topic has a concise title and a single relevant emoji as its icon.
- Output only JSON that follows the provided schema.`

const lessonSystemPrompt = `You are an expert language teacher creating fun, short lessons.

Rules for image-choice questions:
- "question_title" is a generic question in the learner's native language, like "What is this?". Never include the answer in it.
- "question_text" is the core word in the target language being taught. It is the correct answer.
- "image_prompt" is a simple, clear prompt for an image generation model depicting that word. Friendly, cute, vector illustration. The prompt must not ask for ANY text, letters or words in the picture.
- "options" are exactly 4 distinct target-language strings: the correct answer and three plausible distractors.
- "correct_answer" is the correct string, copied exactly from the options.

Rules for sentence-construction questions:
- "question_title" is an instruction in the learner's native language, like "Write this in French:".
- "phrase_to_translate" is a simple phrase in the native language.
- "correct_answer_in_order" is the translation in the target language split into words, in order.
- "word_bank" contains every word of the translation plus 3-4 distractor words, shuffled.

Leave the fields of the other question type empty. Output only JSON that follows the provided schema.`

func buildPlanMessage(target string, d Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", target)
	fmt.Fprintf(&b, "Level: %s\n", d)
	fmt.Fprintf(&b, "Generate a lesson plan with %d sequential topics for a %s student learning %s.\n",
		d.TopicCount(), d, target)
	return b.String()
}

func buildLessonMessage(req LessonRequest, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Native language: %s\n", req.Native.Name)
	fmt.Fprintf(&b, "Target language: %s\n", req.Target.Name)
	fmt.Fprintf(&b, "Level: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic.Title)
	fmt.Fprintf(&b, "\nCreate a %s-level lesson for a native %s speaker learning %s with %d questions: "+
		"%d 'image-choice' questions and %d 'sentence-construction' questions.\n",
		req.Difficulty, req.Native.Name, req.Target.Name,
		cfg.ImageChoiceCount+cfg.SentenceCount, cfg.ImageChoiceCount, cfg.SentenceCount)
	fmt.Fprintf(&b, "Vocabulary must fit the topic %q and the %s level.\n", req.Topic.Title, req.Difficulty)
	return b.String()
}

func buildImagePrompt(prompt, style string) string {
	prompt = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(prompt), "."))
	if style == "" {
		return prompt
	}
	return prompt + ", " + style
}
