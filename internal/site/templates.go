package site

// pageTemplate is the Go html/template shared by the home page and note view.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.LangTag}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteTitle}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="index.html?lang={{.Language}}" class="home-link"><h2 class="project-title">{{.SiteTitle}}</h2></a>
      <a href="{{.ToggleHref}}" id="toggle-lang-btn" data-lang="{{.Language}}">{{.ToggleLabel}}</a>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.SidebarHTML}}
    </div>
  </nav>
  <main class="content">
    {{if .IsHome}}
    <article class="home-note-container">
      {{.Content}}
    </article>
    {{else}}
    <article class="page-content" id="main-content">
      {{.Content}}
    </article>
    {{end}}
  </main>
  <script src="script.js"></script>
</body>
</html>`

// cssContent styles the sidebar lists and note pages.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --accent: #0969da;
  --sidebar-bg: #f6f8fa;
  --border: #d0d7de;
  --sidebar-width: 290px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--fg);
  background: var(--bg);
}

.sidebar {
  position: sticky;
  top: 0;
  width: var(--sidebar-width);
  height: 100vh;
  overflow-y: auto;
  padding: 1rem;
  background: var(--sidebar-bg);
  border-right: 1px solid var(--border);
}

.sidebar-header { margin-bottom: 1rem; }
.sidebar-header .home-link { color: inherit; text-decoration: none; }
.project-title { font-size: 1.1rem; margin: 0 0 .5rem; }

#toggle-lang-btn {
  display: inline-block;
  padding: .25rem .6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  font-size: .85rem;
  color: var(--accent);
  text-decoration: none;
}

.sidebar-tree h3 {
  font-size: .8rem;
  text-transform: uppercase;
  color: var(--muted);
  margin: 1.25rem 0 .4rem;
}

.sidebar-tree ul { list-style: none; margin: 0; padding: 0; }
.sidebar-tree li { margin: .1rem 0; }
.sidebar-tree a {
  display: block;
  padding: .2rem .4rem;
  border-radius: 4px;
  color: var(--fg);
  text-decoration: none;
}
.sidebar-tree a:hover { background: var(--border); }

.sidebar-tree a.has-subtopics::after { content: " ▸"; color: var(--muted); }
.sidebar-tree a.has-subtopics.active::after { content: " ▾"; }
.sidebar-tree a.active { font-weight: 600; }

.subtopics { padding-left: 1rem !important; font-size: .9rem; }
.subtopics.hidden { display: none; }
.subtopics.show { display: block; }

.content {
  flex: 1;
  min-width: 0;
  padding: 2rem 3rem;
  max-width: 960px;
  line-height: 1.6;
}

.content pre { padding: 1rem; overflow-x: auto; border-radius: 6px; }
.content table { border-collapse: collapse; }
.content th, .content td { border: 1px solid var(--border); padding: .3rem .6rem; }

@media (max-width: 768px) {
  body { display: block; }
  .sidebar { position: static; width: auto; height: auto; }
  .content { padding: 1rem; }
}
`

// jsContent drives the sidebar accordion: a click on an expandable link
// collapses every group, then opens the clicked one unless it was already
// open, in which case the link is followed.
const jsContent = `(function() {
  "use strict";

  var tree = document.getElementById("sidebar-tree");
  if (!tree) {
    console.error("sidebar-tree element not found");
    return;
  }

  function collapseAll() {
    tree.querySelectorAll(".subtopics").forEach(function(ul) {
      ul.classList.remove("show");
      ul.classList.add("hidden");
      var parentA = ul.parentElement.querySelector("a.has-subtopics");
      if (parentA) parentA.classList.remove("active");
    });
  }

  function toggle(link, attr) {
    var id = link.getAttribute(attr);
    var ul = tree.querySelector(".subtopics[" + attr + "=\"" + CSS.escape(id) + "\"]");
    var visible = ul && !ul.classList.contains("hidden");

    collapseAll();

    if (ul && !visible) {
      ul.classList.remove("hidden");
      ul.classList.add("show");
      link.classList.add("active");
      return;
    }
    window.location.href = link.href;
  }

  tree.querySelectorAll("a.has-subtopics").forEach(function(link) {
    link.addEventListener("click", function(e) {
      e.preventDefault();
      if (link.hasAttribute("data-interview-id")) {
        toggle(link, "data-interview-id");
      } else {
        toggle(link, "data-topic-id");
      }
    });
  });
})();
`
