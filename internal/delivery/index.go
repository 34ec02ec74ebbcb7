package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 12px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 70px; }
        .get { color: #61affe; } .post { color: #49cc90; } .put { color: #fca130; } .delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Catalog Service API</h1>
    <p>Paging parameters: <code>page</code> (from 0), <code>size</code>, <code>sort=field,asc|desc</code>, <code>direction</code>.</p>

    <h2>Categories</h2>
    <ul>
        <li><span class="method get">GET</span> <code><a href="/categories">/categories</a></code> - Page of categories, sorted by name ascending by default.</li>
        <li><span class="method get">GET</span> <code><a href="/categories/all">/categories/all</a></code> - Every category ordered by id.</li>
        <li><span class="method get">GET</span> <code>/categories/{id}</code> - One category.</li>
        <li><span class="method post">POST</span> <code>/categories</code> - Create. Body: <code>{"name": "string"}</code></li>
        <li><span class="method put">PUT</span> <code>/categories/{id}</code> - Rename. Body: <code>{"name": "string"}</code></li>
        <li><span class="method delete">DELETE</span> <code>/categories/{id}</code> - Delete; fails while products reference it.</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method get">GET</span> <code><a href="/products">/products</a></code> - Page of products, sorted by name descending by default. Filters: <code>categoryId</code>, <code>name</code>.</li>
        <li><span class="method get">GET</span> <code>/products/{id}</code> - One product with its categories.</li>
        <li><span class="method post">POST</span> <code>/products</code> - Create. Body: <code>{"name", "description", "price", "imageUrl", "date", "categories": [{"id"}]}</code></li>
        <li><span class="method put">PUT</span> <code>/products/{id}</code> - Replace every field and the category set.</li>
        <li><span class="method delete">DELETE</span> <code>/products/{id}</code> - Delete.</li>
    </ul>

    <h2>Operations</h2>
    <ul>
        <li><span class="method get">GET</span> <code><a href="/health">/health</a></code> - Liveness and database reachability.</li>
        <li><span class="method get">GET</span> <code><a href="/metrics">/metrics</a></code> - Prometheus metrics.</li>
    </ul>
</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPageContent))
}
