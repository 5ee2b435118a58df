package ui

// Host pages, served whole. Each page carries a small trigger script;
// everything the script injects into the result region comes rendered
// from the server.

const pageStyle = `<style>
    :root {
      --bg: #f4f6f9;
      --card: #ffffff;
      --ink: #22272e;
      --muted: #5c6670;
      --ok: #1f8a4c;
      --bad: #b23a48;
      --accent: #2457a0;
      --line: #d4dbe3;
    }
    * { box-sizing: border-box; }
    body { margin: 0; font-family: "Segoe UI", sans-serif; color: var(--ink); background: var(--bg); }
    main { max-width: 860px; margin: 32px auto; padding: 0 16px; }
    .card { background: var(--card); border: 1px solid var(--line); border-radius: 12px; padding: 20px; margin-bottom: 16px; }
    .muted { color: var(--muted); font-size: 14px; }
    .k { color: var(--muted); }
    a { color: var(--accent); text-decoration: none; }
    a:hover { text-decoration: underline; }
    h1 { font-size: 24px; margin: 0 0 4px; }
    input[type=text], textarea { width: 100%; padding: 9px; border: 1px solid var(--line); border-radius: 8px; font: inherit; }
    textarea { min-height: 140px; resize: vertical; }
    button { border: 1px solid var(--accent); border-radius: 8px; padding: 8px 16px; background: var(--accent); color: #fff; cursor: pointer; margin-top: 10px; }
    .notice { padding: 10px 12px; border-radius: 8px; margin-top: 12px; }
    .notice-warn { background: #fdf6e3; border: 1px solid #e0c878; }
    .notice-error { background: #fbecee; border: 1px solid var(--bad); color: var(--bad); }
    .notice-checking { background: #eef3fa; border: 1px solid var(--line); color: var(--muted); }
    .verdict { display: flex; gap: 16px; align-items: center; margin-top: 16px; flex-wrap: wrap; }
    .verdict .preview { max-width: 220px; max-height: 160px; border-radius: 8px; border: 1px solid var(--line); }
    .gauge { width: 110px; height: 110px; border: 6px solid; border-radius: 50%; display: flex; flex-direction: column; align-items: center; justify-content: center; font-weight: 700; }
    .gauge-score { font-size: 13px; font-weight: 400; }
    .plag-summary { display: flex; gap: 16px; align-items: center; margin-top: 16px; }
    .badge { width: 90px; height: 90px; border: 6px solid; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 20px; font-weight: 700; }
    .para { border: 1px solid var(--line); border-left-width: 4px; border-radius: 8px; padding: 10px 12px; margin-top: 10px; }
    .para-flagged { border-left-color: var(--bad); background: #fbecee; }
    .para-clean { border-left-color: var(--ok); background: #f0f8f3; }
    .para-label { font-size: 12px; font-weight: 600; margin-right: 8px; }
    .para-text { margin: 0 0 6px; white-space: pre-wrap; }
  </style>`

const HomeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>verascan</title>
  ` + pageStyle + `
</head>
<body>
  <main>
    <div class="card">
      <h1>verascan</h1>
      <div class="muted">Content verification tools</div>
    </div>
    <div class="card">
      <h2><a href="/deepfake">Deepfake detector</a></h2>
      <div class="muted">Paste a media URL and get a REAL / FAKE verdict.</div>
    </div>
    <div class="card">
      <h2><a href="/plagiarism">Plagiarism checker</a></h2>
      <div class="muted">Paste text or upload a document and get a per-paragraph report.</div>
    </div>
  </main>
</body>
</html>`

const DeepfakeHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>verascan · deepfake detector</title>
  ` + pageStyle + `
</head>
<body>
  <main>
    <div class="card">
      <h1>Deepfake detector</h1>
      <div class="muted"><a href="/">Back</a></div>
    </div>
    <div class="card">
      <input type="text" id="url-input" placeholder="https://..." />
      <button id="detect-btn">Detect</button>
      <div id="url-result"></div>
    </div>
  </main>
  <script>
  (function () {
    var refs = {
      trigger: document.getElementById("detect-btn"),
      input: document.getElementById("url-input"),
      region: document.getElementById("url-result")
    };
    if (!refs.trigger || !refs.input || !refs.region) return;

    var seq = 0;
    refs.trigger.addEventListener("click", function () {
      var url = refs.input.value.trim();
      if (!url) {
        refs.region.innerHTML = '<div class="notice notice-warn">Please paste a URL first.</div>';
        return;
      }
      var mySeq = ++seq;
      refs.region.innerHTML = '<div class="notice notice-checking">Checking&hellip;</div>';
      fetch("/analyze/url?url=" + encodeURIComponent(url) + "&seq=" + mySeq)
        .then(function (resp) { return resp.text(); })
        .then(function (html) {
          if (mySeq !== seq) return; // superseded by a newer click
          refs.region.innerHTML = html;
        })
        .catch(function (err) {
          if (mySeq !== seq) return;
          refs.region.innerHTML = '<div class="notice notice-error">Request failed: ' + err + "</div>";
        });
    });
  })();
  </script>
</body>
</html>`

const PlagiarismHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>verascan · plagiarism checker</title>
  ` + pageStyle + `
</head>
<body>
  <main>
    <div class="card">
      <h1>Plagiarism checker</h1>
      <div class="muted"><a href="/">Back</a></div>
    </div>
    <div class="card">
      <textarea id="plag-text" placeholder="Paste your text here"></textarea>
      <div class="muted" style="margin-top:8px">or upload a document:</div>
      <input type="file" id="plag-file" />
      <br />
      <button id="check-btn">Check</button>
      <div id="plag-result"></div>
    </div>
  </main>
  <script>
  (function () {
    var refs = {
      trigger: document.getElementById("check-btn"),
      text: document.getElementById("plag-text"),
      file: document.getElementById("plag-file"),
      region: document.getElementById("plag-result")
    };
    if (!refs.trigger || !refs.text || !refs.file || !refs.region) return;

    var seq = 0;
    refs.trigger.addEventListener("click", function () {
      var text = refs.text.value.trim();
      var file = refs.file.files.length > 0 ? refs.file.files[0] : null;
      if (!text && !file) {
        refs.region.innerHTML = '<div class="notice notice-warn">Please paste some text or choose a file first.</div>';
        return;
      }
      var mySeq = ++seq;
      refs.region.innerHTML = '<div class="notice notice-checking">Checking&hellip;</div>';

      var form = new FormData();
      if (file) {
        form.append("file", file);
      } else {
        form.append("text", text);
      }
      fetch("/analyze/plag?seq=" + mySeq, { method: "POST", body: form })
        .then(function (resp) { return resp.text(); })
        .then(function (html) {
          if (mySeq !== seq) return; // superseded by a newer click
          refs.region.innerHTML = html;
        })
        .catch(function (err) {
          if (mySeq !== seq) return;
          refs.region.innerHTML = '<div class="notice notice-error">Request failed: ' + err + "</div>";
        });
    });
  })();
  </script>
</body>
</html>`
