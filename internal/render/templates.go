package render

// Every template starts with a blank line and ends with a newline plus eight
// spaces. Article files have always carried both; keep them byte-identical.
const trailer = "\n        "

var templates = map[Style]string{
	Xiaohongshu: `
🎯 标题：{title}

姐妹们！今天发现 Cursor 一个超好用的小技巧！✨

{content}

💡 使用体验：
- 效率提升 10 倍！
- 代码质量明显变好
- 新手也能快速上手

👇 你们还有什么 Cursor 技巧？评论区交流！

#Cursor #AI编程 #编程技巧 #程序员 #效率工具` + trailer,
	Zhihu: `
## {title}

作为一名程序员，最近深度使用 Cursor 后，发现了一些非常实用的技巧：

{content}

### 核心优势

1. **AI 原生设计**：不同于传统 IDE 的插件式 AI
2. **上下文感知**：真正理解你的代码库
3. **多模态能力**：支持图片、文档理解

### 实际效果

使用 Cursor 一个月后，我的编码效率提升了约 40%，特别是在：
- 代码重构
- Bug 修复
- 文档编写

如果你也在寻找提升编程效率的工具，强烈推荐试试 Cursor。

---
*关注我，持续分享 AI 编程实战经验*` + trailer,
	GZH: `
标题：{title}

大家好，我是 XXX。

最近 AI 编程工具 Cursor 火了，今天分享一个实用技巧：

{content}

【为什么推荐 Cursor】

✅ 基于 VS Code，无缝迁移
✅ GPT-4 加持，代码质量高
✅ 免费使用，性价比极高

【适合人群】

- 前端开发者
- 全栈工程师
- 编程初学者
- 想提升效率的程序员

【获取方式】

官网：cursor.sh

关注我，回复"Cursor"领取完整教程！

---
觉得有用请点赞、在看、转发三连！🙏` + trailer,
}
