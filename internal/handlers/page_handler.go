package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the minimal HTML pages used to exercise the API
// from a browser. They are test surfaces, not a product frontend.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

const pageStyle = `body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:480px;margin:40px auto;padding:20px;color:#333}h1{color:#1a1a1a}label{display:block;margin-top:12px}input{width:100%;padding:8px;margin-top:4px}button{margin-top:16px;padding:8px 16px}pre{background:#f4f4f4;padding:12px;overflow:auto}`

func (h *PageHandler) Register(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Register - TaskBox</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + pageStyle + `</style>
</head><body>
<h1>Register</h1>
<label>Name <input id="name"></label>
<label>Email <input id="email" type="email"></label>
<label>Password <input id="password" type="password"></label>
<button onclick="submitForm()">Register</button>
<p><a href="/login">Already have an account? Log in</a></p>
<pre id="out"></pre>
<script>
async function submitForm() {
  const res = await fetch('/api/v1/auth/register', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      name: document.getElementById('name').value,
      email: document.getElementById('email').value,
      password: document.getElementById('password').value
    })
  });
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
}
</script>
</body></html>`)
}

func (h *PageHandler) Login(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Login - TaskBox</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + pageStyle + `</style>
</head><body>
<h1>Login</h1>
<label>Email <input id="email" type="email"></label>
<label>Password <input id="password" type="password"></label>
<button onclick="submitForm()">Login</button>
<p><a href="/register">Need an account? Register</a></p>
<pre id="out"></pre>
<script>
async function submitForm() {
  const res = await fetch('/api/v1/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      email: document.getElementById('email').value,
      password: document.getElementById('password').value
    })
  });
  const body = await res.json();
  if (body.token) {
    localStorage.setItem('token', body.token);
    window.location.href = '/dashboard';
    return;
  }
  document.getElementById('out').textContent = JSON.stringify(body, null, 2);
}
</script>
</body></html>`)
}

func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Dashboard - TaskBox</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + pageStyle + `</style>
</head><body>
<h1>My Tasks</h1>
<label>Title <input id="title"></label>
<label>Description <input id="description"></label>
<button onclick="createTask()">Add task</button>
<pre id="out"></pre>
<script>
function authHeaders() {
  return {
    'Content-Type': 'application/json',
    'Authorization': 'Bearer ' + (localStorage.getItem('token') || '')
  };
}
async function loadTasks() {
  const res = await fetch('/api/v1/tasks', {headers: authHeaders()});
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
}
async function createTask() {
  await fetch('/api/v1/tasks', {
    method: 'POST',
    headers: authHeaders(),
    body: JSON.stringify({
      title: document.getElementById('title').value,
      description: document.getElementById('description').value
    })
  });
  loadTasks();
}
loadTasks();
</script>
</body></html>`)
}
