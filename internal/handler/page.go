package handler

import "github.com/gofiber/fiber/v3"

// Index handles GET / — a minimal chat page over the /chat endpoint.
func Index(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8" />
    <title>Content Pulse</title>
    <style>
        body {
            font-family: system-ui, -apple-system, BlinkMacSystemFont, sans-serif;
            max-width: 800px;
            margin: 40px auto;
            padding: 0 16px;
        }
        h1 { font-size: 24px; margin-bottom: 8px; }
        #chat {
            border: 1px solid #ddd;
            border-radius: 8px;
            padding: 12px;
            height: 400px;
            overflow-y: auto;
            margin-bottom: 12px;
            background: #fafafa;
            font-size: 14px;
            white-space: pre-wrap;
        }
        .msg-user { margin: 4px 0; font-weight: bold; }
        .msg-bot { margin: 4px 0 10px 0; }
        #question {
            width: 100%;
            padding: 8px;
            font-size: 14px;
            box-sizing: border-box;
            margin-bottom: 8px;
        }
        button {
            padding: 8px 14px;
            font-size: 14px;
            cursor: pointer;
            margin-right: 6px;
            margin-top: 4px;
        }
    </style>
</head>
<body>
    <h1>Content Pulse</h1>
    <p>Задай вопрос по популярности и статистике контента канала.</p>
    <div id="chat"></div>
    <textarea id="question" rows="3" placeholder="Например: какое самое популярное видео из последних пяти?"></textarea>
    <br/>
    <button onclick="sendQuestion()">Отправить</button>

    <p>Примеры вопросов:</p>
    <button onclick="setExample('какое самое популярное видео из последних пяти?')">Топ-1 из последних 5</button>
    <button onclick="setExample('топ-3 видео по просмотрам из последних пяти записей')">Топ-3 по просмотрам</button>
    <button onclick="setExample('у каких видео из последних пяти самая высокая вовлечённость?')">Топ-3 по вовлечённости</button>

    <script>
        function setExample(text) {
            const textarea = document.getElementById('question');
            textarea.value = text;
            textarea.focus();
        }

        async function sendQuestion() {
            const textarea = document.getElementById('question');
            const chat = document.getElementById('chat');
            const q = textarea.value.trim();
            if (!q) return;

            const userMsg = document.createElement('div');
            userMsg.className = 'msg-user';
            userMsg.textContent = 'Вы: ' + q;
            chat.appendChild(userMsg);

            textarea.value = '';
            chat.scrollTop = chat.scrollHeight;

            try {
                const resp = await fetch('/chat', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify({question: q})
                });

                const data = await resp.json();
                const botMsg = document.createElement('div');
                botMsg.className = 'msg-bot';

                if (!resp.ok) {
                    botMsg.textContent = 'Ошибка: ' + ((data.error && data.error.message) || 'что-то пошло не так');
                } else {
                    botMsg.textContent = 'Бот:\n' + (data.answer || '');
                }

                chat.appendChild(botMsg);
                chat.scrollTop = chat.scrollHeight;
            } catch (e) {
                const botMsg = document.createElement('div');
                botMsg.className = 'msg-bot';
                botMsg.textContent = 'Ошибка запроса: ' + e;
                chat.appendChild(botMsg);
                chat.scrollTop = chat.scrollHeight;
            }
        }
    </script>
</body>
</html>
`
