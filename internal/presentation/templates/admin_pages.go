package templates

// AdminLoginPage renders the admin login form. The page keeps the bearer
// token in localStorage; the dashboard redirects back here when it expires.
func AdminLoginPage() string {
	return `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Admin Login</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: Helvetica, Arial, sans-serif; background: #0f172a; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
    .card { background: #fff; border-radius: 12px; padding: 32px; width: 90%; max-width: 380px; }
    h1 { font-size: 1.4rem; margin-bottom: 20px; color: #0f172a; }
    input { width: 100%; padding: 10px; margin: 6px 0; border: 1px solid #d1d5db; border-radius: 6px; font-size: 1rem; }
    button { width: 100%; margin-top: 16px; padding: 12px; font-size: 1rem; font-weight: bold; color: #fff; background: #4f46e5; border: none; border-radius: 8px; cursor: pointer; }
    .error { color: #dc2626; font-size: .9rem; margin-top: 10px; min-height: 1.2em; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Admin Login</h1>
    <form id="loginForm">
      <input type="text" id="username" placeholder="Username" autocomplete="username" required>
      <input type="password" id="password" placeholder="Password" autocomplete="current-password" required>
      <button type="submit">Sign in</button>
      <div class="error" id="loginError"></div>
    </form>
  </div>

  <script>
    if (localStorage.getItem('adminToken')) {
      location.href = '/admin/dashboard';
    }

    document.getElementById('loginForm').addEventListener('submit', function (e) {
      e.preventDefault();
      var errBox = document.getElementById('loginError');
      errBox.textContent = '';

      fetch('/api/v1/admin/login', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          username: document.getElementById('username').value,
          password: document.getElementById('password').value
        })
      }).then(function (res) {
        return res.json().then(function (data) { return { status: res.status, data: data }; });
      }).then(function (r) {
        if (r.status === 200 && r.data.token) {
          localStorage.setItem('adminToken', r.data.token);
          localStorage.setItem('adminUser', JSON.stringify(r.data.admin || {}));
          location.href = '/admin/dashboard';
        } else {
          errBox.textContent = r.data.error || 'Login failed';
        }
      }).catch(function () {
        errBox.textContent = 'Network error. Please try again.';
      });
    });
  </script>
</body>
</html>`
}

// AdminDashboardPage renders the dashboard shell. All data arrives client-side
// from the protected API, so an expired token shows nothing sensitive.
func AdminDashboardPage() string {
	return `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Admin Dashboard</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: Helvetica, Arial, sans-serif; background: #f1f5f9; color: #0f172a; }
    header { background: #0f172a; color: #fff; padding: 14px 24px; display: flex; justify-content: space-between; align-items: center; }
    header h1 { font-size: 1.1rem; }
    header button { background: #334155; color: #fff; border: none; border-radius: 6px; padding: 8px 14px; cursor: pointer; }
    main { max-width: 1100px; margin: 24px auto; padding: 0 16px; }
    .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin-bottom: 20px; }
    .stat { background: #fff; border-radius: 10px; padding: 16px; }
    .stat .num { font-size: 1.6rem; font-weight: bold; }
    .stat .label { color: #64748b; font-size: .85rem; }
    .tabs { display: flex; gap: 8px; margin-bottom: 12px; }
    .tabs button { padding: 8px 18px; border: none; border-radius: 8px; background: #e2e8f0; cursor: pointer; font-weight: bold; }
    .tabs button.active { background: #4f46e5; color: #fff; }
    table { width: 100%; background: #fff; border-radius: 10px; border-collapse: collapse; overflow: hidden; }
    th, td { text-align: left; padding: 10px 12px; border-bottom: 1px solid #e2e8f0; font-size: .9rem; }
    th { background: #f8fafc; color: #475569; }
    .pager { display: flex; gap: 8px; align-items: center; margin: 14px 0; }
    .pager button { padding: 6px 14px; border: none; border-radius: 6px; background: #e2e8f0; cursor: pointer; }
    .pager button:disabled { opacity: .4; cursor: not-allowed; }
    .live-dot { display: inline-block; width: 8px; height: 8px; border-radius: 50%; background: #22c55e; margin-right: 6px; }
    #liveFeed { background: #fff; border-radius: 10px; padding: 12px; margin-top: 20px; max-height: 200px; overflow-y: auto; font-size: .85rem; }
    #liveFeed div { padding: 4px 0; border-bottom: 1px solid #f1f5f9; }
  </style>
</head>
<body>
  <header>
    <h1>Spin &amp; Win — Dashboard</h1>
    <button id="logoutBtn">Log out</button>
  </header>
  <main>
    <div class="stats" id="stats"></div>

    <div class="tabs">
      <button id="tabUsers" class="active">Leads</button>
      <button id="tabTracking">Visitor Sessions</button>
    </div>

    <div id="usersPanel">
      <table>
        <thead><tr><th>Email</th><th>Phone</th><th>Location</th><th>Prize</th><th>Device</th><th>Created</th></tr></thead>
        <tbody id="usersBody"></tbody>
      </table>
      <div class="pager">
        <button id="usersPrev">Prev</button>
        <span id="usersPageInfo"></span>
        <button id="usersNext">Next</button>
      </div>
    </div>

    <div id="trackingPanel" style="display:none">
      <table>
        <thead><tr><th>Session</th><th>IP</th><th>Device</th><th>Browser</th><th>Page Views</th><th>Lead</th><th>Last Seen</th></tr></thead>
        <tbody id="trackingBody"></tbody>
      </table>
      <div class="pager">
        <button id="trackingPrev">Prev</button>
        <span id="trackingPageInfo"></span>
        <button id="trackingNext">Next</button>
      </div>
    </div>

    <div id="liveFeed"><div><span class="live-dot"></span>Live feed connecting...</div></div>
  </main>

  <script>
    var token = localStorage.getItem('adminToken');
    if (!token) { location.href = '/admin/login'; }

    function logout() {
      localStorage.removeItem('adminToken');
      localStorage.removeItem('adminUser');
      location.href = '/admin/login';
    }
    document.getElementById('logoutBtn').addEventListener('click', logout);

    function apiGet(path) {
      return fetch(path, { headers: { 'Authorization': 'Bearer ' + token } }).then(function (res) {
        if (res.status === 401) { logout(); throw new Error('unauthorized'); }
        return res.json();
      });
    }

    function esc(s) {
      var d = document.createElement('div');
      d.textContent = s == null ? '' : String(s);
      return d.innerHTML;
    }

    var usersPage = 1, trackingPage = 1;

    function loadUsers() {
      apiGet('/api/v1/admin/users?page=' + usersPage + '&limit=10').then(function (data) {
        var rows = (data.users || []).map(function (u) {
          return '<tr><td>' + esc(u.email) + '</td><td>' + esc(u.phone) + '</td><td>' + esc(u.location) +
            '</td><td>' + esc(u.prize) + '</td><td>' + esc(u.meta && u.meta.device) +
            '</td><td>' + esc(new Date(u.createdAt).toLocaleString()) + '</td></tr>';
        });
        document.getElementById('usersBody').innerHTML = rows.join('') || '<tr><td colspan="6">No leads yet</td></tr>';
        var p = data.pagination || {};
        document.getElementById('usersPageInfo').textContent = 'Page ' + p.currentPage + ' of ' + (p.totalPages || 1) + ' (' + (p.totalUsers || 0) + ' leads)';
        document.getElementById('usersPrev').disabled = !p.hasPrevPage;
        document.getElementById('usersNext').disabled = !p.hasNextPage;
      }).catch(function () {});
    }

    function loadTracking() {
      apiGet('/api/v1/admin/tracking?page=' + trackingPage + '&limit=10').then(function (data) {
        var rows = (data.trackingData || []).map(function (s) {
          return '<tr><td>' + esc(s.sessionId) + '</td><td>' + esc(s.meta && s.meta.ipAddress) +
            '</td><td>' + esc(s.meta && s.meta.device) + '</td><td>' + esc(s.meta && s.meta.browser) +
            '</td><td>' + (s.pageViews ? s.pageViews.length : 0) + '</td><td>' + (s.leadId ? '✓' : '—') +
            '</td><td>' + esc(new Date(s.updatedAt).toLocaleString()) + '</td></tr>';
        });
        document.getElementById('trackingBody').innerHTML = rows.join('') || '<tr><td colspan="7">No sessions yet</td></tr>';
        var p = data.pagination || {};
        document.getElementById('trackingPageInfo').textContent = 'Page ' + p.currentPage + ' of ' + (p.totalPages || 1) + ' (' + (p.totalRecords || 0) + ' sessions)';
        document.getElementById('trackingPrev').disabled = !p.hasPrevPage;
        document.getElementById('trackingNext').disabled = !p.hasNextPage;

        var st = data.stats || {};
        document.getElementById('stats').innerHTML =
          '<div class="stat"><div class="num">' + (st.totalVisitors || 0) + '</div><div class="label">Total visitors</div></div>' +
          '<div class="stat"><div class="num">' + (st.uniqueIPs || 0) + '</div><div class="label">Unique IPs</div></div>' +
          '<div class="stat"><div class="num">' + (st.totalPageViews || 0) + '</div><div class="label">Page views</div></div>';
      }).catch(function () {});
    }

    document.getElementById('usersPrev').addEventListener('click', function () { usersPage--; loadUsers(); });
    document.getElementById('usersNext').addEventListener('click', function () { usersPage++; loadUsers(); });
    document.getElementById('trackingPrev').addEventListener('click', function () { trackingPage--; loadTracking(); });
    document.getElementById('trackingNext').addEventListener('click', function () { trackingPage++; loadTracking(); });

    document.getElementById('tabUsers').addEventListener('click', function () {
      this.classList.add('active');
      document.getElementById('tabTracking').classList.remove('active');
      document.getElementById('usersPanel').style.display = '';
      document.getElementById('trackingPanel').style.display = 'none';
    });
    document.getElementById('tabTracking').addEventListener('click', function () {
      this.classList.add('active');
      document.getElementById('tabUsers').classList.remove('active');
      document.getElementById('usersPanel').style.display = 'none';
      document.getElementById('trackingPanel').style.display = '';
    });

    loadUsers();
    loadTracking();

    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/api/v1/admin/live?token=' + encodeURIComponent(token));
    var feed = document.getElementById('liveFeed');
    ws.onopen = function () {
      feed.innerHTML = '<div><span class="live-dot"></span>Live feed connected</div>';
    };
    ws.onmessage = function (msg) {
      var event;
      try { event = JSON.parse(msg.data); } catch (e) { return; }
      var line = document.createElement('div');
      if (event.type === 'lead') {
        line.textContent = '🎯 New lead: ' + (event.payload.email || '') + ' won ' + (event.payload.prize || '');
        loadUsers();
      } else {
        line.textContent = '👁 Page view: ' + (event.payload.page || '') + ' (' + (event.payload.device || '') + ')';
      }
      feed.insertBefore(line, feed.children[1] || null);
      loadTracking();
    };
    ws.onclose = function () {
      var line = document.createElement('div');
      line.textContent = 'Live feed disconnected';
      feed.insertBefore(line, feed.children[1] || null);
    };
  </script>
</body>
</html>`
}
