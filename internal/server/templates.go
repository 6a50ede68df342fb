package server

import "html/template"

// The pages are small enough to live inline; they are presentation only,
// all behavior sits behind /api/chat.
var pages = template.Must(template.Must(template.New("landing").Parse(landingHTML)).New("chat").Parse(chatHTML))

const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Persona AI</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #fafaf9; color: #1c1917; }
  .wrap { max-width: 860px; margin: 0 auto; padding: 48px 24px; }
  h1 { font-weight: 300; font-size: 2.4rem; color: #c15f3c; }
  .tagline { color: #57534e; font-size: 1.1rem; margin-bottom: 40px; }
  .cards { display: flex; gap: 24px; flex-wrap: wrap; }
  .card { flex: 1 1 300px; background: #fff; border: 1px solid #e7e5e4; border-radius: 12px; padding: 24px; }
  .card img { width: 56px; height: 56px; border-radius: 50%; }
  .card h3 { margin: 12px 0 2px; }
  .card .title { color: #78716c; font-size: 0.9rem; margin: 0 0 10px; }
  .card p { color: #44403c; font-size: 0.95rem; line-height: 1.5; }
  .cta { display: inline-block; margin-top: 40px; background: #1c1917; color: #fff; padding: 14px 28px; border-radius: 999px; text-decoration: none; }
  footer { margin-top: 56px; color: #a8a29e; font-size: 0.8rem; }
</style>
</head>
<body>
<div class="wrap">
  <h1>Persona AI</h1>
  <p class="tagline">Chat with your favourite coding mentors. Choose a persona, ask anything, learn the way they teach.</p>
  <div class="cards">
    {{range .}}
    <div class="card">
      <img src="{{.AvatarURL}}" alt="{{.Name}}">
      <h3>{{.Name}}</h3>
      <p class="title">{{.Title}}</p>
      <p>{{.Bio}}</p>
    </div>
    {{end}}
  </div>
  <a class="cta" href="/chat">Start a conversation</a>
  <footer>Built with chai, curiosity and a single API route.</footer>
</div>
</body>
</html>
`

const chatHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Persona AI — Chat</title>
<style>
  * { box-sizing: border-box; }
  body { font-family: system-ui, sans-serif; margin: 0; display: flex; min-height: 100vh; background: #fafaf9; color: #1c1917; }
  .sidebar { width: 300px; background: #fff; border-right: 1px solid #e7e5e4; padding: 24px; }
  .sidebar h1 { font-weight: 300; font-size: 1.5rem; margin: 0 0 24px; color: #c15f3c; }
  .persona { border: 2px solid #e7e5e4; border-radius: 10px; padding: 14px; margin-bottom: 14px; cursor: pointer; }
  .persona.active { border-color: #1c1917; background: #fafaf9; }
  .persona img { width: 40px; height: 40px; border-radius: 50%; vertical-align: middle; margin-right: 10px; }
  .persona .who { display: inline-block; vertical-align: middle; }
  .persona .who b { display: block; }
  .persona .who span { color: #78716c; font-size: 0.85rem; }
  .main { flex: 1; display: flex; flex-direction: column; }
  .header { background: #fff; border-bottom: 1px solid #e7e5e4; padding: 14px 24px; display: flex; justify-content: space-between; align-items: center; }
  .header button { border: 0; background: none; color: #78716c; cursor: pointer; }
  .messages { flex: 1; overflow-y: auto; padding: 24px; }
  .row { display: flex; margin-bottom: 16px; }
  .row.user { justify-content: flex-end; }
  .bubble { max-width: 70%; padding: 14px 16px; border-radius: 16px; white-space: pre-wrap; line-height: 1.5; }
  .user .bubble { background: #1c1917; color: #fff; }
  .assistant .bubble { background: #fff; border: 1px solid #e7e5e4; }
  .bubble pre { padding: 12px; border-radius: 8px; overflow-x: auto; }
  .user .bubble pre, .user .bubble code { background: #44403c; color: #fff; }
  .assistant .bubble pre, .assistant .bubble code { background: #f5f5f4; color: #1c1917; border: 1px solid #e7e5e4; }
  .bubble code { padding: 2px 6px; border-radius: 4px; font-size: 0.9em; }
  .composer { background: #fff; border-top: 1px solid #e7e5e4; padding: 16px 24px; display: flex; gap: 12px; }
  .composer textarea { flex: 1; border: 1px solid #e7e5e4; border-radius: 14px; padding: 12px; resize: none; font: inherit; }
  .composer button { width: 48px; border: 0; border-radius: 50%; background: #1c1917; color: #fff; cursor: pointer; }
  .composer button:disabled { background: #a8a29e; cursor: not-allowed; }
  .hint { text-align: center; color: #a8a29e; font-size: 0.75rem; padding-bottom: 10px; background: #fff; }
  .thinking { color: #78716c; font-size: 0.9rem; }
</style>
</head>
<body>
<div class="sidebar">
  <h1>Persona AI</h1>
  {{range .}}
  <div class="persona" data-id="{{.ID}}" data-name="{{.Name}}">
    <img src="{{.AvatarURL}}" alt="{{.Name}}">
    <div class="who"><b>{{.Name}}</b><span>{{.Title}}</span></div>
  </div>
  {{end}}
</div>
<div class="main">
  <div class="header"><span id="who"></span><button id="clear">Clear Chat</button></div>
  <div class="messages" id="messages"></div>
  <div class="composer">
    <textarea id="input" rows="1" placeholder="Type your message..."></textarea>
    <button id="send">&#10148;</button>
  </div>
  <div class="hint">Press Enter to send &bull; Shift + Enter for new line</div>
</div>
<script>
(function () {
  "use strict";
  var BT = "\x60";
  var fenceRe = new RegExp("(" + BT + "{3}[\\s\\S]*?" + BT + "{3})");
  var inlineCodeRe = new RegExp(BT + "([^" + BT + "]+)" + BT, "g");

  var persona = "hiteshSir";
  var conversation = [];
  var loading = false;
  var rateLimitedUntil = 0;

  var messagesEl = document.getElementById("messages");
  var inputEl = document.getElementById("input");
  var sendEl = document.getElementById("send");
  var whoEl = document.getElementById("who");

  function esc(s) {
    return s.replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;");
  }

  // Mirrors the server-side renderer: fenced blocks first, then inline
  // code, bold, italic, line breaks, in that order.
  function renderContent(text) {
    return text.split(fenceRe).map(function (part) {
      if (part.slice(0, 3) === BT + BT + BT && part.slice(-3) === BT + BT + BT) {
        return "<pre><code>" + esc(part.slice(3, -3).trim()) + "</code></pre>";
      }
      var h = esc(part);
      h = h.replace(inlineCodeRe, function (_, c) { return "<code>" + c + "</code>"; });
      h = h.replace(/\*\*(.*?)\*\*/g, "<strong>$1</strong>");
      h = h.replace(/__(.*?)__/g, "<strong>$1</strong>");
      h = h.replace(/\*(.*?)\*/g, "<em>$1</em>");
      h = h.replace(/_(.*?)_/g, "<em>$1</em>");
      h = h.replace(/\n/g, "<br>");
      return h;
    }).join("");
  }

  function storageKey(p) { return "persona-ai-" + p; }

  function saveConversation() {
    if (conversation.length > 0) {
      localStorage.setItem(storageKey(persona), JSON.stringify(conversation));
    }
  }

  function loadConversation(p) {
    try {
      var saved = localStorage.getItem(storageKey(p));
      return saved ? JSON.parse(saved) : [];
    } catch (e) {
      return [];
    }
  }

  function personaName(p) {
    var el = document.querySelector('.persona[data-id="' + p + '"]');
    return el ? el.getAttribute("data-name") : p;
  }

  function render() {
    whoEl.textContent = personaName(persona);
    var html = conversation.map(function (m) {
      return '<div class="row ' + m.role + '"><div class="bubble">' + renderContent(m.content) + "</div></div>";
    }).join("");
    if (loading) {
      html += '<div class="row assistant"><div class="bubble thinking">Thinking...</div></div>';
    }
    messagesEl.innerHTML = html;
    messagesEl.scrollTop = messagesEl.scrollHeight;

    document.querySelectorAll(".persona").forEach(function (el) {
      el.classList.toggle("active", el.getAttribute("data-id") === persona);
    });

    var limited = Date.now() < rateLimitedUntil;
    inputEl.disabled = loading || limited;
    sendEl.disabled = loading || limited;
    inputEl.placeholder = limited
      ? "Wait " + Math.ceil((rateLimitedUntil - Date.now()) / 1000) + "s to send"
      : "Type your message...";
  }

  function send() {
    var text = inputEl.value;
    if (!text.trim() || loading || Date.now() < rateLimitedUntil) return;

    conversation.push({ role: "user", content: text });
    saveConversation();
    inputEl.value = "";
    loading = true;
    render();

    fetch("/api/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ message: text, persona: persona })
    }).then(function (res) {
      return res.json().catch(function () { return {}; }).then(function (data) {
        if (res.status === 429) {
          rateLimitedUntil = Date.now() + (data.resetInSeconds || 60) * 1000;
          var tick = setInterval(function () {
            render();
            if (Date.now() >= rateLimitedUntil) clearInterval(tick);
          }, 1000);
          return;
        }
        if (!res.ok) throw new Error(data.error || "Something went wrong");
        conversation.push({ role: "assistant", content: data.response });
        saveConversation();
      });
    }).catch(function (err) {
      conversation.push({ role: "assistant", content: "ERROR: " + err.message });
      saveConversation();
    }).then(function () {
      loading = false;
      render();
    });
  }

  document.querySelectorAll(".persona").forEach(function (el) {
    el.addEventListener("click", function () {
      var next = el.getAttribute("data-id");
      if (next === persona) return;
      persona = next;
      inputEl.value = "";
      conversation = loadConversation(persona);
      render();
    });
  });

  document.getElementById("clear").addEventListener("click", function () {
    conversation = [];
    localStorage.removeItem(storageKey(persona));
    render();
  });

  sendEl.addEventListener("click", send);
  inputEl.addEventListener("keypress", function (e) {
    if (e.key === "Enter" && !e.shiftKey) {
      e.preventDefault();
      send();
    }
  });

  conversation = loadConversation(persona);
  render();
})();
</script>
</body>
</html>
`
