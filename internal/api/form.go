package api

// formPage is the static submission form. It posts the same JSON body as
// any other API client and renders the outcome message inline.
const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Project Generator</title>
  <style>
    body { font-family: Inter, sans-serif; background: #F9FAFB; margin: 0; }
    main { max-width: 560px; margin: 48px auto; padding: 24px; background: #fff;
           border-radius: 12px; box-shadow: 0 2px 12px rgba(0,0,0,.08); }
    h1 { color: #1A73E8; font-size: 1.4rem; }
    label { display: block; margin: 16px 0 4px; font-weight: 600; }
    select, textarea { width: 100%; padding: 8px; border: 1px solid #ccc;
                       border-radius: 6px; box-sizing: border-box; }
    textarea { min-height: 96px; resize: vertical; }
    button { margin-top: 16px; padding: 10px 20px; border: 0; border-radius: 6px;
             background: #1A73E8; color: #fff; cursor: pointer; }
    button:disabled { background: #9bb8e8; }
    #status { margin-top: 16px; }
    .warn { color: #b45309; }
    .err { color: #b91c1c; }
    .ok { color: #15803d; }
  </style>
</head>
<body>
  <main>
    <h1>Generate a project</h1>
    <form id="gen">
      <label for="type">Project type</label>
      <select id="type">
        <option value="web app">Web app</option>
        <option value="landing page">Landing page</option>
        <option value="api server">API server</option>
        <option value="cli tool">CLI tool</option>
      </select>
      <label for="desc">Describe your project</label>
      <textarea id="desc" placeholder="A todo list with due dates and tags"></textarea>
      <button type="submit">Generate</button>
    </form>
    <p id="status"></p>
  </main>
  <script>
    const form = document.getElementById('gen');
    const status = document.getElementById('status');
    form.addEventListener('submit', async (e) => {
      e.preventDefault();
      const button = form.querySelector('button');
      button.disabled = true;
      status.textContent = 'Generating...';
      status.className = '';
      try {
        const res = await fetch('/project/generate', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify({
            projectType: document.getElementById('type').value,
            description: document.getElementById('desc').value,
          }),
        });
        const body = await res.json();
        if (!res.ok) {
          status.textContent = body.error || 'Generation failed';
          status.className = 'err';
        } else if (body.fallbackUsed) {
          status.textContent = 'Created a minimal starter at ' + body.projectPath +
            ' (the model response could not be parsed).';
          status.className = 'warn';
        } else {
          status.textContent = 'Created ' + body.fileCount + ' files at ' + body.projectPath + '.';
          status.className = 'ok';
        }
      } catch (err) {
        status.textContent = 'Request failed: ' + err;
        status.className = 'err';
      } finally {
        button.disabled = false;
      }
    });
  </script>
</body>
</html>
`
