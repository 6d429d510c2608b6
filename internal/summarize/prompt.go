package summarize

import "fmt"

// DefaultSystemPrompt instructs the model to pull scene passages out of the
// novel and turn them into an image-generation prompt.
const DefaultSystemPrompt = `你是一个专业的文学分析师和图像描述专家。你的任务是从用户提供的小说文本中，提取与用户指定的图像主题相关的段落，并据此生成一个详细的、适合AI图像生成的prompt。

要求：
- 只使用与主题相关的原文内容，保留空间布局、视觉细节、核心实体与氛围描写
- 输出的prompt应包含场景、人物、环境、光线与色彩等具体视觉元素
- 体现小说的风格和氛围
- 长度控制在200-500字之间`

// userTemplate interpolates the novel text and the user's request, in that order.
const userTemplate = `小说文本 (Novel text):
%s

用户需求 (User request):
%s`

// BuildUserMessage renders the user turn sent to the model.
func BuildUserMessage(novelText, userPrompt string) string {
	return fmt.Sprintf(userTemplate, novelText, userPrompt)
}
